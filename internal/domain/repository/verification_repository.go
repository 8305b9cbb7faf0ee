package repository

import (
	"context"
	"time"

	"staffhub/internal/domain/entity"
)

// VerificationCodeRepository persists mobile verification codes.
// Rows are insert-only; expiry is the only invalidation mechanism.
type VerificationCodeRepository interface {
	// Create inserts a new code row. Existing live codes for the same
	// (mobile, purpose) stay valid.
	Create(ctx context.Context, code *entity.VerificationCode) error

	// FindLatestValid returns the most recently inserted row matching
	// (mobile, code, purpose) with expires_at after now, or ErrNotFound.
	// Ties are broken by insertion order, newest first.
	FindLatestValid(ctx context.Context, mobile, code string, purpose entity.CodePurpose, now time.Time) (*entity.VerificationCode, error)
}
