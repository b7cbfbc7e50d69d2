package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

const maxBodyBytes = 64 << 10

// decodeBody reads a JSON request body into v. On failure it writes a 400
// and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, predictsdk.ErrorCodeInvalidRequest, "request body must be valid JSON")
		return false
	}
	return true
}

// identity returns the caller set by AuthnMiddleware. Routes that call it
// are always behind authentication.
func identity(r *http.Request) httpx.Identity {
	id, _ := httpx.IdentityFromContext(r.Context())
	return id
}
