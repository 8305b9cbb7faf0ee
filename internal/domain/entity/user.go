package entity

import (
	"strings"
	"time"
)

// User is the persisted account record backing a login identity.
// PasswordHash is a bcrypt hash and never leaves the service layer.
type User struct {
	ID           int64
	UserName     string
	PasswordHash string
	Mobile       string
	Role         Role
	CompanyID    string
	CreatedAt    time.Time
	LastLoginAt  time.Time
}

// MaskMobile hides digits 4-7 of an 11-digit mobile number,
// e.g. "13800005678" becomes "138****5678". Shorter values are
// returned untouched.
func MaskMobile(mobile string) string {
	if len(mobile) != 11 {
		return mobile
	}

	return mobile[:3] + strings.Repeat("*", 4) + mobile[7:]
}
