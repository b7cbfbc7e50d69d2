package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret accepted, in bytes.
const MinSecretLength = 32

var ErrWeakSecret = errors.New("jwtx: signing secret must be at least 32 bytes")

// Signer turns claims into a compact JWT.
type Signer interface {
	Sign(SessionClaims) (string, error)
}

// HS256Signer signs session tokens with a shared HMAC-SHA256 secret.
type HS256Signer struct {
	secret []byte
}

func NewHS256Signer(secret []byte) (*HS256Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	return &HS256Signer{secret: secret}, nil
}

func (s *HS256Signer) Sign(claims SessionClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
