package http

import (
	"net/http"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the system
//	@Description	Creates the first admin account. Only available when a bootstrap token is configured and only while no users exist.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string							true	"Bootstrap token"
//	@Param			request				body		predictsdk.BootstrapRequest		true	"Admin account"
//	@Success		201					{object}	predictsdk.BootstrapResponse	"Admin created"
//	@Failure		400					{object}	httpx.ErrorResponse				"Validation failed"
//	@Failure		401					{object}	httpx.ErrorResponse				"Missing or wrong bootstrap token"
//	@Failure		404					{object}	httpx.ErrorResponse				"Bootstrap not enabled"
//	@Failure		409					{object}	httpx.ErrorResponse				"Already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())
	l.Info("starting to bootstrap")

	if h.BootstrapService.Token == "" {
		httpx.WriteError(w, http.StatusNotFound, predictsdk.ErrorCodeNotFound, "bootstrap endpoint is not enabled")
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, predictsdk.ErrorCodeUnauthorized,
			"bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	var req predictsdk.BootstrapRequest
	if !decodeBody(w, r, &req) {
		return
	}

	admin, err := h.BootstrapService.Bootstrap(r.Context(), token, service.BootstrapInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, predictsdk.BootstrapResponse{AdminUserID: admin.ID})
}
