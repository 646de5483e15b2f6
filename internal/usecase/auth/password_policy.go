package auth

import (
	"unicode"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt only accepts up to 72 bytes of input.
	maxPasswordBytes = 72
)

// ValidatePasswordStrength rejects short or letterless passwords and those
// bcrypt cannot hash.
func ValidatePasswordStrength(password string) error {
	if len(password) > maxPasswordBytes {
		return domain.ErrPasswordTooLong
	}
	if len([]rune(password)) < minPasswordLength {
		return domain.ErrWeakPassword
	}

	hasLetter := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return domain.ErrWeakPassword
	}
	return nil
}
