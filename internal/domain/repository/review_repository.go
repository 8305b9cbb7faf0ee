package repository

import (
	"context"

	"staffhub/internal/domain/entity"
)

// ReviewRepository persists performance assessment records.
type ReviewRepository interface {
	// Create inserts one review and fills in the generated ID.
	Create(ctx context.Context, review *entity.PerformanceReview) error

	// ListByEmployee returns all reviews for one profile, newest first.
	ListByEmployee(ctx context.Context, employeeID int64) ([]*entity.PerformanceReview, error)
}
