package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/repository"
	"staffhub/internal/infra/persistence/model"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by primary key.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUserName retrieves a single user by login name.
func (repo *userRepository) FindByUserName(ctx context.Context, userName string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("user_name = ?", userName).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	return toUserDomain(&userM), nil
}

// FindByMobile retrieves a single user by mobile number.
func (repo *userRepository) FindByMobile(ctx context.Context, mobile string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("mobile = ?", mobile).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by mobile")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The unique index on user_name is the
// backstop for concurrent registrations with the same name.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if !user.Role.IsValid() {
		return errors.Errorf("refusing to store unknown role %q", user.Role)
	}

	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// UpdatePassword replaces the password hash for the account bound to mobile.
func (repo *userRepository) UpdatePassword(ctx context.Context, mobile, passwordHash string) error {
	res := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("mobile = ?", mobile).
		Update("password", passwordHash)
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update password")
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// TouchLastLogin records a successful login timestamp.
func (repo *userRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("last_login_time", at).Error

	return errors.Wrap(err, "failed to touch last login")
}

// Delete removes the account row.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	err := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id).Error

	return errors.Wrap(err, "failed to delete user")
}

// --- Mapper functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		UserName:     data.UserName,
		PasswordHash: data.PasswordHash,
		Mobile:       data.Mobile,
		Role:         entity.Role(data.Role),
		CompanyID:    data.CompanyID,
		CreatedAt:    data.CreatedAt,
		LastLoginAt:  data.LastLoginAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		UserName:     data.UserName,
		PasswordHash: data.PasswordHash,
		Mobile:       data.Mobile,
		Role:         data.Role.String(),
		CompanyID:    data.CompanyID,
		LastLoginAt:  data.LastLoginAt,
	}
}
