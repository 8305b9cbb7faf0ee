package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub/config"
)

func newValidator() *credentialValidator {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4} // minimum cost keeps tests fast

	return NewCredentialValidator(cfg).(*credentialValidator)
}

func TestValidatePasswordFormat(t *testing.T) {
	v := newValidator()

	tests := []struct {
		password string
		want     bool
	}{
		{"Abcd1234", true},
		{"aB3aB3aB3aB3aB3aB3aB", true}, // exactly 20
		{"Abcd123", false},             // too short
		{"Abcd1234Abcd1234Abcd1", false}, // 21 chars
		{"abcd1234", false},            // no uppercase
		{"ABCD1234", false},            // no lowercase
		{"Abcdefgh", false},            // no digit
		{"Abcd1234!", false},           // symbol outside charset
		{"Abcd 1234", false},           // space outside charset
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, v.ValidatePasswordFormat(tt.password), "password %q", tt.password)
	}
}

func TestValidateMobileFormat(t *testing.T) {
	v := newValidator()

	tests := []struct {
		mobile string
		want   bool
	}{
		{"13800000000", true},
		{"19912345678", true},
		{"12800000000", false}, // second digit out of range
		{"23800000000", false}, // must start with 1
		{"1380000000", false},  // 10 digits
		{"138000000000", false}, // 12 digits
		{"1380000000a", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, v.ValidateMobileFormat(tt.mobile), "mobile %q", tt.mobile)
	}
}

func TestHashAndCheck(t *testing.T) {
	v := newValidator()

	hash, err := v.Hash("Abcd1234")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcd1234", hash)

	assert.True(t, v.Check("Abcd1234", hash))
	assert.False(t, v.Check("Abcd1235", hash))

	// Salted: hashing the same password twice yields different hashes.
	hash2, err := v.Hash("Abcd1234")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}
