package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
)

func TestValidatePasswordStrength_RejectsWeakPasswords(t *testing.T) {
	testCases := []string{
		"",
		"Short1",
		"12345678901",
		"!!!!????####",
	}

	for _, password := range testCases {
		if err := ValidatePasswordStrength(password); !errors.Is(err, domain.ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_RejectsPasswordsOverBcryptLimit(t *testing.T) {
	testCases := []string{
		strings.Repeat("a", 100),
		strings.Repeat("a", 73),
		// 37 runes, 74 bytes
		strings.Repeat("я", 37),
	}

	for _, password := range testCases {
		if err := ValidatePasswordStrength(password); !errors.Is(err, domain.ErrPasswordTooLong) {
			t.Fatalf("expected ErrPasswordTooLong for %d bytes, got %v", len(password), err)
		}
	}

	if err := ValidatePasswordStrength(strings.Repeat("a", 72)); err != nil {
		t.Fatalf("expected 72 bytes to be accepted, got %v", err)
	}
}

func TestValidatePasswordStrength_AcceptsStrongPasswords(t *testing.T) {
	for _, password := range []string{"StrongPass1", "correct horse battery", "пароль123"} {
		if err := ValidatePasswordStrength(password); err != nil {
			t.Fatalf("expected nil error for %q, got %v", password, err)
		}
	}
}
