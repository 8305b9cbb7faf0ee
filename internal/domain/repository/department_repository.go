package repository

import (
	"context"

	"staffhub/internal/domain/entity"
)

// DepartmentRepository reads organizational units and grades.
type DepartmentRepository interface {
	// ListDepartments returns all departments ordered by ID.
	ListDepartments(ctx context.Context) ([]*entity.Department, error)

	// ListLevels returns all employee levels ordered by ID.
	ListLevels(ctx context.Context) ([]*entity.EmployeeLevel, error)
}
