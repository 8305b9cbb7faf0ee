package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/repository"
	"staffhub/internal/infra/persistence/model"
)

// departmentRepository implements repository.DepartmentRepository using GORM.
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository is the constructor for departmentRepository.
func NewDepartmentRepository(db *gorm.DB) repository.DepartmentRepository {
	return &departmentRepository{db: db}
}

// ListDepartments returns all departments ordered by ID.
func (repo *departmentRepository) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	var rows []model.DepartmentModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	depts := make([]*entity.Department, 0, len(rows))
	for _, row := range rows {
		depts = append(depts, &entity.Department{
			ID:       row.ID,
			Name:     row.DeptName,
			ParentID: row.ParentID,
		})
	}

	return depts, nil
}

// ListLevels returns all employee levels ordered by ID.
func (repo *departmentRepository) ListLevels(ctx context.Context) ([]*entity.EmployeeLevel, error) {
	var rows []model.EmployeeLevelModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}

	levels := make([]*entity.EmployeeLevel, 0, len(rows))
	for _, row := range rows {
		levels = append(levels, &entity.EmployeeLevel{
			ID:          row.ID,
			Name:        row.LevelName,
			Description: row.LevelDescription,
		})
	}

	return levels, nil
}
