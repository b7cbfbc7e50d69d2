package http

import (
	"net/http"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

type UserHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles self registration.
//
//	@Summary		Register
//	@Description	Creates a teacher or student account. Admin accounts come only from bootstrap.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		predictsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	predictsdk.UserResponse		"Account created"
//	@Failure		400		{object}	httpx.ErrorResponse			"Validation failed"
//	@Failure		409		{object}	httpx.ErrorResponse			"Username taken"
//	@Failure		429		{object}	httpx.ErrorResponse			"Rate limited"
//	@Router			/v1/users [post].
func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req predictsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Role:        domain.Role(req.Role),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

func toUserResponse(u domain.User) predictsdk.UserResponse {
	return predictsdk.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role.String(),
		CreatedAt:   u.CreatedAt,
	}
}
