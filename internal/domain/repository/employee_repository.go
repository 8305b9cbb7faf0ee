package repository

import (
	"context"

	"staffhub/internal/domain/entity"
)

// StaffQuery carries the optional filters of the staff listing.
// Empty slices mean "no filter on this column".
type StaffQuery struct {
	Education  []string
	Level      []string
	Department []string
	Name       []string
	// UserID scopes the listing to one account when non-zero
	// (non-admin callers only ever see themselves).
	UserID int64
	Page   int
	Size   int
}

// EmployeeRepository persists HR profiles.
type EmployeeRepository interface {
	// FindByID retrieves a profile by primary key.
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)

	// FindByUserID retrieves the profile attached to a login account.
	FindByUserID(ctx context.Context, userID int64) (*entity.Employee, error)

	// FindDetailByID retrieves a profile joined with account, department
	// and level rows.
	FindDetailByID(ctx context.Context, id int64) (*entity.EmployeeDetail, error)

	// List returns one page of joined profiles plus the unpaged total.
	List(ctx context.Context, q StaffQuery) ([]*entity.EmployeeDetail, int64, error)

	// ListAllDetails returns every joined profile. Feeds the in-memory
	// analytics aggregation.
	ListAllDetails(ctx context.Context) ([]*entity.EmployeeDetail, error)

	// Create persists a new profile and fills in the generated ID.
	Create(ctx context.Context, emp *entity.Employee) error

	// Update applies the given column values to one profile row.
	// The caller decides which fields a principal may touch.
	Update(ctx context.Context, id int64, fields map[string]any) error

	// UpdateAvatar replaces the stored avatar URL and returns the
	// previous value.
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) (string, error)

	// Delete removes the profile row.
	Delete(ctx context.Context, id int64) error
}
