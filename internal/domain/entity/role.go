// Package entity contains the core business objects of the project.
package entity

// Role represents the account role used for authorization decisions.
type Role string

const (
	// RoleAdmin may manage every employee record and run analytics.
	RoleAdmin Role = "Admin"
	// RoleUser may only read and edit records it owns.
	RoleUser Role = "User"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value. Any other string must be
// rejected at the store boundary; roles are fixed at account creation.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}
