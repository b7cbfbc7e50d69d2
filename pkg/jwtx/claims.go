package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the session lifetime when none is configured.
const DefaultSessionTTL = 12 * time.Hour

// SessionClaims is everything a session token carries. Callers outside this
// package and httpx never see the encoded form.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is one of the roles known to the service ("teacher", "student",
	// "admin"). jwtx does not interpret it.
	Role string `json:"role"`
}

// NewSessionClaims builds claims for subject valid from now until now+ttl.
func NewSessionClaims(subject, role string, ttl time.Duration, issuer string, now time.Time) SessionClaims {
	return SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role: role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// Validate is called by the jwt parser after the registered claims checks.
func (c SessionClaims) Validate() error {
	if c.Subject == "" || c.Role == "" {
		return ErrInvalidClaim
	}
	return nil
}
