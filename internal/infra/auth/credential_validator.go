package auth

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"staffhub/config"
	"staffhub/internal/domain/service"
)

var (
	// Password charset is strictly letters and digits; symbols are rejected.
	passwordCharsetRe = regexp.MustCompile(`^[A-Za-z0-9]{8,20}$`)
	passwordLowerRe   = regexp.MustCompile(`[a-z]`)
	passwordUpperRe   = regexp.MustCompile(`[A-Z]`)
	passwordDigitRe   = regexp.MustCompile(`[0-9]`)

	mobileRe = regexp.MustCompile(`^1[3-9]\d{9}$`)
)

// credentialValidator implements service.CredentialValidator using bcrypt
// for hashing. bcrypt embeds a per-hash random salt and compares in
// constant time with respect to the candidate.
type credentialValidator struct {
	cost int
}

// NewCredentialValidator is the constructor for credentialValidator.
func NewCredentialValidator(cfg *config.Config) service.CredentialValidator {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &credentialValidator{cost: cost}
}

// ValidatePasswordFormat reports whether the password satisfies the policy.
func (v *credentialValidator) ValidatePasswordFormat(password string) bool {
	return passwordCharsetRe.MatchString(password) &&
		passwordLowerRe.MatchString(password) &&
		passwordUpperRe.MatchString(password) &&
		passwordDigitRe.MatchString(password)
}

// ValidateMobileFormat reports whether the mobile number is well-formed.
func (v *credentialValidator) ValidateMobileFormat(mobile string) bool {
	return mobileRe.MatchString(mobile)
}

// Hash generates a salted hash from a plaintext password.
func (v *credentialValidator) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (v *credentialValidator) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
