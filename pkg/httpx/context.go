package httpx

import (
	"context"

	"github.com/aussiebroadwan/predictclass/pkg/jwtx"
)

type ctxKey string

const ctxKeyClaims ctxKey = "session_claims"

// Identity is the authenticated caller as seen by handlers.
type Identity struct {
	SubjectID string
	Role      string
}

// WithClaims stores verified session claims on ctx.
func WithClaims(ctx context.Context, c jwtx.SessionClaims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// ClaimsFromContext returns the verified session claims, if any.
func ClaimsFromContext(ctx context.Context) (jwtx.SessionClaims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.SessionClaims)
	return c, ok
}

// IdentityFromContext returns the caller attached by AuthnMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	c, ok := ClaimsFromContext(ctx)
	if !ok {
		return Identity{}, false
	}
	return Identity{SubjectID: c.Subject, Role: c.Role}, true
}
