package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

// RequireRole lets the request through only when the caller's role is
// exactly role. There is no hierarchy: admin does not imply teacher.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				writeUnauthorized(w, "authentication required")
				return
			}

			if id.Role != role {
				slogx.FromContext(r.Context()).Info("role mismatch",
					"have", id.Role,
					"want", role,
				)
				WriteError(w, http.StatusForbidden, "forbidden", "requires role "+role)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
