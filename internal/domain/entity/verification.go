package entity

import "time"

// CodePurpose scopes a verification code to the flow it was issued for.
// The wire representation is a small integer, kept stable for clients.
type CodePurpose int

const (
	PurposeRegister      CodePurpose = 1
	PurposeLogin         CodePurpose = 2
	PurposeResetPassword CodePurpose = 3
)

// IsValid reports whether the purpose is one of the known values.
func (p CodePurpose) IsValid() bool {
	switch p {
	case PurposeRegister, PurposeLogin, PurposeResetPassword:
		return true
	default:
		return false
	}
}

// VerificationCode proves control of a mobile number for one purpose.
// Rows are insert-only; a code stays consumable until expires_at passes.
// There is no consumed flag, so a live code may be presented more than
// once within its window.
type VerificationCode struct {
	ID        int64
	Mobile    string
	Code      string
	Purpose   CodePurpose
	ExpiresAt time.Time
	CreatedAt time.Time
}
