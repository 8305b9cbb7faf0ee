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

// verificationRepository implements repository.VerificationCodeRepository
// using GORM. Codes are insert-only; issuing a new one never touches
// earlier rows, so several live codes may coexist per (mobile, purpose).
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationCodeRepository {
	return &verificationRepository{db: db}
}

// Create inserts a new code row.
func (repo *verificationRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	codeM := &model.VerificationCodeModel{
		Mobile:    code.Mobile,
		Code:      code.Code,
		Type:      int(code.Purpose),
		ExpiresAt: code.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return errors.Wrap(err, "failed to create verification code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindLatestValid returns the newest unexpired row matching all three
// fields. The ORDER BY id DESC tie-break makes the most recently issued
// code authoritative when duplicates exist.
func (repo *verificationRepository) FindLatestValid(ctx context.Context, mobile, code string, purpose entity.CodePurpose, now time.Time) (*entity.VerificationCode, error) {
	var codeM model.VerificationCodeModel
	err := repo.db.WithContext(ctx).
		Where("mobile = ? AND code = ? AND type = ? AND expire_time > ?", mobile, code, int(purpose), now).
		Order("id DESC").
		First(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification code")
	}

	return &entity.VerificationCode{
		ID:        codeM.ID,
		Mobile:    codeM.Mobile,
		Code:      codeM.Code,
		Purpose:   entity.CodePurpose(codeM.Type),
		ExpiresAt: codeM.ExpiresAt,
		CreatedAt: codeM.CreatedAt,
	}, nil
}
