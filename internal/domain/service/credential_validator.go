package service

// CredentialValidator bundles the credential format policy with password
// hashing, keeping the concrete algorithm out of the domain.
type CredentialValidator interface {
	// ValidatePasswordFormat enforces the password policy: length 8-20,
	// at least one lowercase, one uppercase and one digit, and no
	// characters outside letters and digits.
	ValidatePasswordFormat(password string) bool

	// ValidateMobileFormat accepts exactly 11 digits starting with 1
	// followed by a digit in 3-9.
	ValidateMobileFormat(mobile string) bool

	// Hash generates a salted one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash in constant
	// time with respect to the candidate.
	Check(password, hash string) bool
}
