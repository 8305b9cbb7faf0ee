// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"staffhub/internal/domain/entity"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
// It is the backstop for the username-exists check's TOCTOU window: two
// concurrent registrations may both pass the lookup, but only one insert wins.
var ErrDuplicate = errors.New("duplicate record")

// UserRepository persists account records.
type UserRepository interface {
	// FindByID retrieves a single user by primary key.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUserName retrieves a single user by login name.
	FindByUserName(ctx context.Context, userName string) (*entity.User, error)

	// FindByMobile retrieves a single user by mobile number.
	FindByMobile(ctx context.Context, mobile string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the password hash for the account bound to
	// mobile. Returns ErrNotFound when no row was updated.
	UpdatePassword(ctx context.Context, mobile, passwordHash string) error

	// TouchLastLogin records a successful login timestamp.
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error

	// Delete removes the account row.
	Delete(ctx context.Context, id int64) error
}
