package repository

import (
	"context"
	"time"

	"staffhub/internal/domain/entity"
)

// AttendanceRepository persists check-in records.
type AttendanceRepository interface {
	// Create inserts one check-in record and fills in the generated ID.
	Create(ctx context.Context, rec *entity.AttendanceRecord) error

	// CountByDay buckets records of one type per calendar day inside
	// [from, to]. userID == 0 means all users.
	CountByDay(ctx context.Context, typ entity.AttendanceType, from, to time.Time, userID int64) ([]*entity.DayCount, error)

	// ListDetails returns records of one type inside [from, to] joined
	// with staff name and department, newest first. userID == 0 means
	// all users.
	ListDetails(ctx context.Context, typ entity.AttendanceType, from, to time.Time, userID int64) ([]*entity.AttendanceDetail, error)
}
