package service

import (
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

func normalizeUsername(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// ValidateUsername expects an already normalised username.
func ValidateUsername(u string) error {
	if len(u) < 3 || len(u) > 32 {
		return ErrInvalidUsername
	}
	for _, r := range u {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
		default:
			return ErrInvalidUsername
		}
	}
	return nil
}

func ValidatePassword(p string) error {
	n := utf8.RuneCountInString(p)
	if n < minPasswordLength || n > maxPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func validateText(s string, maxLen int, err error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxLen {
		return "", err
	}
	return s, nil
}

// NormalizeJoinCode upper-cases and trims code, then checks its shape.
func NormalizeJoinCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != domain.JoinCodeLength {
		return "", ErrInvalidJoinCode
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(domain.JoinCodeAlphabet, rune(code[i])) {
			return "", ErrInvalidJoinCode
		}
	}
	return code, nil
}
