package http

import (
	"net/http"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

type PasswordResetHandler struct {
	PasswordResetService *service.PasswordResetService
}

// HandleRequest godoc
//
//	@Summary		Request a password reset
//	@Description	Issues a single-use reset token valid for one hour and hands it to the configured notifier. Always 202 so accounts cannot be probed.
//	@Tags			Password Reset
//	@Accept			json
//	@Param			request	body	predictsdk.PasswordResetRequest	true	"Account"
//	@Success		202
//	@Failure		400	{object}	httpx.ErrorResponse	"Malformed body"
//	@Failure		429	{object}	httpx.ErrorResponse	"Rate limited"
//	@Router			/v1/password-reset [post].
func (h *PasswordResetHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req predictsdk.PasswordResetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.PasswordResetService.RequestReset(r.Context(), req.Username); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusAccepted)
}

// HandleConfirm godoc
//
//	@Summary		Complete a password reset
//	@Description	Redeems a reset token and sets a new password. A token works once.
//	@Tags			Password Reset
//	@Accept			json
//	@Param			request	body	predictsdk.PasswordResetConfirmRequest	true	"Token and new password"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorResponse	"invalid_token, token_used, token_expired or a weak password"
//	@Failure		429	{object}	httpx.ErrorResponse	"Rate limited"
//	@Router			/v1/password-reset/confirm [post].
func (h *PasswordResetHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req predictsdk.PasswordResetConfirmRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.PasswordResetService.CompleteReset(r.Context(), req.Token, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
