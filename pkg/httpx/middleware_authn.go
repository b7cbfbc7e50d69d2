package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/predictclass/pkg/jwtx"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

// AuthnMiddleware requires a valid session token, taken from the
// Authorization header or, failing that, from the signed session cookie.
// cookies may be nil to accept bearer tokens only.
func AuthnMiddleware(v jwtx.Verifier, cookies *SessionCookies) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, source, err := extractToken(r, cookies)
			if err != nil {
				log.Debug("session token missing", "err", err)
				writeUnauthorized(w, "authentication required")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token rejected", "source", source, "err", err)
				if errors.Is(err, jwtx.ErrExpired) {
					writeUnauthorized(w, "session expired")
					return
				}
				writeUnauthorized(w, "invalid session token")
				return
			}

			ctx = WithClaims(ctx, claims)
			ctx = slogx.With(ctx, "user_id", claims.Subject, "role", claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken prefers a Bearer header. Any other Authorization scheme, such
// as Basic added by a proxy, is ignored in favour of the session cookie.
func extractToken(r *http.Request, cookies *SessionCookies) (token, source string, err error) {
	var headerErr error
	if authz := r.Header.Get("Authorization"); authz != "" {
		scheme, rest, ok := strings.Cut(authz, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
			if token == "" {
				return "", "header", errors.New("empty bearer token")
			}
			return token, "header", nil
		}
		headerErr = errors.New("authorization scheme is not bearer")
	}

	if cookies == nil {
		if headerErr != nil {
			return "", "header", headerErr
		}
		return "", "", ErrNoSessionCookie
	}

	token, err = cookies.Read(r)
	if errors.Is(err, ErrNoSessionCookie) && headerErr != nil {
		return "", "header", headerErr
	}
	return token, "cookie", err
}
