package http

import (
	"net/http"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

type AdminHandler struct {
	ClassService *service.ClassService
}

// HandleListClasses godoc
//
//	@Summary		List all classes
//	@Description	Every class in the system. Requires the admin role.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	predictsdk.ListClassesResponse	"Classes"
//	@Failure		401	{object}	httpx.ErrorResponse				"Unauthenticated"
//	@Failure		403	{object}	httpx.ErrorResponse				"Not an admin"
//	@Security		BearerAuth
//	@Router			/v1/admin/classes [get].
func (h *AdminHandler) HandleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.ClassService.ListClasses(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := predictsdk.ListClassesResponse{Classes: make([]predictsdk.ClassResponse, len(classes))}
	for i, c := range classes {
		resp.Classes[i] = toClassResponse(c)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
