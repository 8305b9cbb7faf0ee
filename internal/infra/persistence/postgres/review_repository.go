package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/repository"
	"staffhub/internal/infra/persistence/model"
)

// reviewRepository implements repository.ReviewRepository using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts one review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.PerformanceReview) error {
	reviewM := &model.ReviewModel{
		EmployeeID: review.EmployeeID,
		Period:     review.Period,
		Score:      review.Score,
		Grade:      review.Grade,
		Comment:    review.Comment,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		return errors.Wrap(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// ListByEmployee returns all reviews for one profile, newest first.
func (repo *reviewRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*entity.PerformanceReview, error) {
	var rows []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("create_time DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.PerformanceReview, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, &entity.PerformanceReview{
			ID:         row.ID,
			EmployeeID: row.EmployeeID,
			Period:     row.Period,
			Score:      row.Score,
			Grade:      row.Grade,
			Comment:    row.Comment,
			CreatedAt:  row.CreatedAt,
		})
	}

	return reviews, nil
}
