package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/repository"
	"staffhub/internal/infra/persistence/model"
)

// employeeRepository implements repository.EmployeeRepository using GORM.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

// employeeDetailRow is the scan target of the joined staff queries.
type employeeDetailRow struct {
	model.EmployeeModel
	UserName         string
	Role             string
	DeptName         string
	LevelName        string
	LevelDescription string
}

const detailSelect = `employee_profiles.*,
	users.user_name AS user_name,
	users.role AS role,
	departments.dept_name AS dept_name,
	employee_levels.level_name AS level_name,
	employee_levels.level_description AS level_description`

// detailQuery builds the joined base query shared by the staff listing,
// the detail lookup and the analytics scan.
func (repo *employeeRepository) detailQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Select(detailSelect).
		Joins("JOIN users ON employee_profiles.user_id = users.id").
		Joins("JOIN departments ON employee_profiles.dept_id = departments.id").
		Joins("LEFT JOIN employee_levels ON employee_profiles.level_id = employee_levels.id")
}

// FindByID retrieves a profile by primary key.
func (repo *employeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var empM model.EmployeeModel
	if err := repo.db.WithContext(ctx).First(&empM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	return toEmployeeDomain(&empM), nil
}

// FindByUserID retrieves the profile attached to a login account.
func (repo *employeeRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Employee, error) {
	var empM model.EmployeeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&empM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by user id")
	}

	return toEmployeeDomain(&empM), nil
}

// FindDetailByID retrieves a joined profile row.
func (repo *employeeRepository) FindDetailByID(ctx context.Context, id int64) (*entity.EmployeeDetail, error) {
	var row employeeDetailRow
	err := repo.detailQuery(ctx).
		Where("employee_profiles.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee detail")
	}

	return toDetailDomain(&row), nil
}

// List returns one page of joined profiles plus the unpaged total.
func (repo *employeeRepository) List(ctx context.Context, q repository.StaffQuery) ([]*entity.EmployeeDetail, int64, error) {
	base := repo.detailQuery(ctx)
	base = applyStaffFilters(base, q)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count staff")
	}

	page, size := q.Page, q.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	var rows []employeeDetailRow
	err := base.
		Order("employee_profiles.id").
		Limit(size).
		Offset((page - 1) * size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list staff")
	}

	details := make([]*entity.EmployeeDetail, 0, len(rows))
	for i := range rows {
		details = append(details, toDetailDomain(&rows[i]))
	}

	return details, total, nil
}

// ListAllDetails returns every joined profile for the analytics scan.
func (repo *employeeRepository) ListAllDetails(ctx context.Context) ([]*entity.EmployeeDetail, error) {
	var rows []employeeDetailRow
	if err := repo.detailQuery(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employee details")
	}

	details := make([]*entity.EmployeeDetail, 0, len(rows))
	for i := range rows {
		details = append(details, toDetailDomain(&rows[i]))
	}

	return details, nil
}

// Create persists a new profile.
func (repo *employeeRepository) Create(ctx context.Context, emp *entity.Employee) error {
	empM := fromEmployeeDomain(emp)

	if err := repo.db.WithContext(ctx).Create(empM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "unknown department or level reference")
		}

		return errors.Wrap(err, "failed to create employee")
	}

	emp.ID = empM.ID
	emp.CreatedAt = empM.CreatedAt

	return nil
}

// Update applies the given column values to one profile row.
func (repo *employeeRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	res := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update employee")
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// UpdateAvatar replaces the stored avatar URL and returns the old one.
func (repo *employeeRepository) UpdateAvatar(ctx context.Context, id int64, avatarURL string) (string, error) {
	var empM model.EmployeeModel
	if err := repo.db.WithContext(ctx).Select("id", "avatar").First(&empM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrNotFound
		}

		return "", errors.Wrap(err, "failed to load old avatar")
	}

	err := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", id).
		Update("avatar", avatarURL).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to update avatar")
	}

	return empM.Avatar, nil
}

// Delete removes the profile row.
func (repo *employeeRepository) Delete(ctx context.Context, id int64) error {
	err := repo.db.WithContext(ctx).Delete(&model.EmployeeModel{}, id).Error

	return errors.Wrap(err, "failed to delete employee")
}

func applyStaffFilters(tx *gorm.DB, q repository.StaffQuery) *gorm.DB {
	if q.UserID != 0 {
		tx = tx.Where("users.id = ?", q.UserID)
	}
	if len(q.Education) > 0 {
		tx = tx.Where("employee_profiles.education IN ?", q.Education)
	}
	if len(q.Level) > 0 {
		tx = tx.Where("employee_levels.level_name IN ?", q.Level)
	}
	if len(q.Department) > 0 {
		tx = tx.Where("departments.dept_name IN ?", q.Department)
	}
	if len(q.Name) > 0 {
		tx = tx.Where("employee_profiles.real_name IN ?", q.Name)
	}

	return tx
}

// --- Mapper functions ---

func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:        data.ID,
		UserID:    data.UserID,
		DeptID:    data.DeptID,
		LevelID:   data.LevelID,
		RealName:  data.RealName,
		Education: data.Education,
		Gender:    data.Gender,
		Mobile:    data.Mobile,
		IDNumber:  data.IDNumber,
		Avatar:    data.Avatar,
		BirthDate: data.BirthDate,
		JoinDate:  data.JoinDate,
		CreatedAt: data.CreatedAt,
	}
}

func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		DeptID:    data.DeptID,
		LevelID:   data.LevelID,
		RealName:  data.RealName,
		Education: data.Education,
		Gender:    data.Gender,
		Mobile:    data.Mobile,
		IDNumber:  data.IDNumber,
		Avatar:    data.Avatar,
		BirthDate: data.BirthDate,
		JoinDate:  data.JoinDate,
	}
}

func toDetailDomain(row *employeeDetailRow) *entity.EmployeeDetail {
	return &entity.EmployeeDetail{
		Employee:  *toEmployeeDomain(&row.EmployeeModel),
		UserName:  row.UserName,
		Role:      entity.Role(row.Role),
		DeptName:  row.DeptName,
		LevelName: row.LevelName,
		LevelDesc: row.LevelDescription,
	}
}
