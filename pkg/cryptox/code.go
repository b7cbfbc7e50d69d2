package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// CodeAlphabet is the upper case alphanumeric set used for join codes.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var ErrInvalidAlphabet = errors.New("cryptox: alphabet must hold between 2 and 256 symbols")

// GenerateCode draws length symbols uniformly from alphabet using crypto/rand.
func GenerateCode(alphabet string, length int) (string, error) {
	return GenerateCodeFrom(rand.Reader, alphabet, length)
}

// GenerateCodeFrom is GenerateCode with an explicit byte source.
//
// Bytes at or above the largest multiple of len(alphabet) are rejected so
// every symbol is equally likely; for the 36 symbol alphabet that discards
// 4 of 256 byte values.
func GenerateCodeFrom(src io.Reader, alphabet string, length int) (string, error) {
	n := len(alphabet)
	if n < 2 || n > 256 {
		return "", ErrInvalidAlphabet
	}
	if length <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}

	limit := 256 - (256 % n)
	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		// Only read what is still missing.
		chunk := buf[:length-len(out)]
		if _, err := io.ReadFull(src, chunk); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range chunk {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%n])
		}
	}

	return string(out), nil
}
