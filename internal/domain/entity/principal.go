package entity

// Principal is the authenticated identity derived from a verified token for
// a single request. It is never persisted; it lives only in the request
// context between the auth middleware and the handlers.
type Principal struct {
	UserID   int64
	UserName string
	Role     Role
}

// IsAdmin reports whether the principal passes the role gate.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Owns reports whether the principal passes the ownership gate for a
// resource owned by userID. Admins own everything.
func (p Principal) Owns(userID int64) bool {
	return p.IsAdmin() || p.UserID == userID
}
