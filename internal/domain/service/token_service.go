// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit
// within a single entity.
package service

import (
	"time"

	"staffhub/internal/domain/entity"
)

// TokenService signs and verifies the bearer tokens handed out at login.
// Verification is stateless: there is no server-side session store and no
// revocation, a token simply dies when its embedded expiry passes.
type TokenService interface {
	// Issue signs a token embedding the principal's claims with a fixed
	// TTL and returns the token plus its expiry instant.
	Issue(principal entity.Principal) (token string, expiresAt time.Time, err error)

	// Verify checks structure, signature and expiry. Every failure kind
	// collapses into domain errors.ErrTokenInvalid; callers must not be
	// able to tell a forged token from an expired one.
	Verify(token string) (*entity.Principal, error)
}
