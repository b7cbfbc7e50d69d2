package http

import (
	"net/http"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

type SessionHandler struct {
	SessionService *service.SessionService
	Cookies        *httpx.SessionCookies // nil disables the cookie channel
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Checks a username and password and issues a session token. The token is returned in the body and set in the signed session cookie.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		predictsdk.LoginRequest		true	"Credentials"
//	@Success		201		{object}	predictsdk.SessionResponse	"Session issued"
//	@Failure		400		{object}	httpx.ErrorResponse			"Malformed body"
//	@Failure		401		{object}	httpx.ErrorResponse			"Invalid username or password"
//	@Failure		429		{object}	httpx.ErrorResponse			"Rate limited"
//	@Router			/v1/sessions [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req predictsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.SessionService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if h.Cookies != nil {
		if err := h.Cookies.Set(w, sess.Token); err != nil {
			slogx.FromContext(r.Context()).Error("failed to encode session cookie", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, predictsdk.ErrorCodeServerError, "an internal error occurred")
			return
		}
	}

	httpx.WriteJSON(w, http.StatusCreated, predictsdk.SessionResponse{
		Token:     sess.Token,
		TokenType: "Bearer",
		ExpiresAt: sess.ExpiresAt,
		UserID:    sess.Identity.SubjectID,
		Role:      sess.Identity.Role.String(),
	})
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Clears the session cookie. Tokens are stateless and stay valid until they expire.
//	@Tags			Sessions
//	@Success		204
//	@Router			/v1/sessions [delete].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if h.Cookies != nil {
		h.Cookies.Clear(w)
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe godoc
//
//	@Summary		Current identity
//	@Description	Returns the subject and role carried by the session token.
//	@Tags			Sessions
//	@Produce		json
//	@Success		200	{object}	predictsdk.IdentityResponse	"Caller identity"
//	@Failure		401	{object}	httpx.ErrorResponse			"Missing, invalid or expired session"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *SessionHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, _ := httpx.ClaimsFromContext(r.Context())

	resp := predictsdk.IdentityResponse{
		UserID: claims.Subject,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
