package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Token sizes in raw bytes before encoding.
const (
	// TokenSize128 is 128 bits, 22 chars base64url.
	TokenSize128 = 16
	// TokenSize256 is 256 bits, 43 chars base64url. Password reset tokens use this.
	TokenSize256 = 32
)

// GenerateToken returns size bytes from crypto/rand encoded as unpadded
// base64url.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// FingerprintToken returns the base64url SHA-256 of token. Only fingerprints
// are persisted so a leaked table cannot be replayed.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
