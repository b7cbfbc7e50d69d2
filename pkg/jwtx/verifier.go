package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Verifier validates a token and hands back its claims.
type Verifier interface {
	Verify(token string) (SessionClaims, error)
}

// VerifyOptions captures what a verifier insists on.
type VerifyOptions struct {
	// Issuer the token must carry. Empty means don't care.
	Issuer string

	// Leeway for exp/nbf clock skew.
	Leeway time.Duration

	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

// HS256Verifier checks tokens produced by HS256Signer with the same secret.
type HS256Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewHS256Verifier(secret []byte, opts VerifyOptions) (*HS256Verifier, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(opts.Leeway),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Now != nil {
		parserOpts = append(parserOpts, jwt.WithTimeFunc(opts.Now))
	}

	return &HS256Verifier{secret: secret, parser: jwt.NewParser(parserOpts...)}, nil
}

// Verify parses raw and checks algorithm, signature, issuer, exp and nbf.
// A token is expired from the instant its exp claim is reached.
func (v *HS256Verifier) Verify(raw string) (SessionClaims, error) {
	var claims SessionClaims

	token, err := v.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return SessionClaims{}, classify(err)
	}
	if !token.Valid {
		return SessionClaims{}, ErrInvalidClaim
	}

	return claims, nil
}

// classify collapses the jwt library errors into our own sentinels. Order
// matters: claim failures are all wrapped in ErrTokenInvalidClaims.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSig, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, ErrInvalidClaim):
		return ErrInvalidClaim
	default:
		return fmt.Errorf("%w: %v", ErrInvalidClaim, err)
	}
}
