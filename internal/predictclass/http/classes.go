package http

import (
	"net/http"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

type ClassHandler struct {
	ClassService *service.ClassService
	GameService  *service.GameService
}

// HandleCreate godoc
//
//	@Summary		Create a class
//	@Description	Creates a class owned by the caller with a fresh six character join code.
//	@Tags			Classes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		predictsdk.CreateClassRequest	true	"Class"
//	@Success		201		{object}	predictsdk.ClassResponse		"Class created"
//	@Failure		400		{object}	httpx.ErrorResponse				"Validation failed"
//	@Failure		401		{object}	httpx.ErrorResponse				"Unauthenticated"
//	@Failure		403		{object}	httpx.ErrorResponse				"Not a teacher"
//	@Failure		503		{object}	httpx.ErrorResponse				"No join code could be allocated"
//	@Security		BearerAuth
//	@Router			/v1/classes [post].
func (h *ClassHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req predictsdk.CreateClassRequest
	if !decodeBody(w, r, &req) {
		return
	}

	class, err := h.ClassService.CreateClass(r.Context(), identity(r).SubjectID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toClassResponse(class))
}

// HandleJoin godoc
//
//	@Summary		Join a class
//	@Description	Enrols the calling student in the class that owns the join code. Codes are case insensitive.
//	@Tags			Classes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		predictsdk.JoinClassRequest	true	"Join code"
//	@Success		200		{object}	predictsdk.ClassResponse	"Joined"
//	@Failure		400		{object}	httpx.ErrorResponse			"Malformed join code"
//	@Failure		403		{object}	httpx.ErrorResponse			"Not a student"
//	@Failure		404		{object}	httpx.ErrorResponse			"Unknown join code"
//	@Failure		409		{object}	httpx.ErrorResponse			"Already enrolled"
//	@Security		BearerAuth
//	@Router			/v1/classes/join [post].
func (h *ClassHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	var req predictsdk.JoinClassRequest
	if !decodeBody(w, r, &req) {
		return
	}

	class, err := h.ClassService.JoinClass(r.Context(), identity(r).SubjectID, req.JoinCode)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClassResponse(class))
}

// HandleGet godoc
//
//	@Summary		Get a class
//	@Description	Visible to the class teacher, enrolled students and admins.
//	@Tags			Classes
//	@Produce		json
//	@Param			id	path		string						true	"Class ID"
//	@Success		200	{object}	predictsdk.ClassResponse	"Class"
//	@Failure		403	{object}	httpx.ErrorResponse			"Not a member"
//	@Failure		404	{object}	httpx.ErrorResponse			"No such class"
//	@Security		BearerAuth
//	@Router			/v1/classes/{id} [get].
func (h *ClassHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	class, err := h.ClassService.GetClass(r.Context(), callerIdentity(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClassResponse(class))
}

// HandleLeaderboard godoc
//
//	@Summary		Class leaderboard
//	@Description	Total points per enrolled student, highest first.
//	@Tags			Classes
//	@Produce		json
//	@Param			id	path		string							true	"Class ID"
//	@Success		200	{object}	predictsdk.LeaderboardResponse	"Leaderboard"
//	@Failure		403	{object}	httpx.ErrorResponse				"Not a member"
//	@Failure		404	{object}	httpx.ErrorResponse				"No such class"
//	@Security		BearerAuth
//	@Router			/v1/classes/{id}/leaderboard [get].
func (h *ClassHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	classID := r.PathValue("id")

	entries, err := h.ClassService.Leaderboard(r.Context(), callerIdentity(r), classID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := predictsdk.LeaderboardResponse{
		ClassID: classID,
		Entries: make([]predictsdk.LeaderboardEntry, len(entries)),
	}
	for i, e := range entries {
		resp.Entries[i] = predictsdk.LeaderboardEntry{
			StudentID:   e.StudentID,
			DisplayName: e.DisplayName,
			Points:      e.Points,
			Predictions: e.Predictions,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreateGame godoc
//
//	@Summary		Open a game
//	@Description	Opens a prediction game in a class the caller teaches.
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Class ID"
//	@Param			request	body		predictsdk.CreateGameRequest	true	"Question"
//	@Success		201		{object}	predictsdk.GameResponse			"Game opened"
//	@Failure		400		{object}	httpx.ErrorResponse				"Validation failed"
//	@Failure		403		{object}	httpx.ErrorResponse				"Not the class teacher"
//	@Failure		404		{object}	httpx.ErrorResponse				"No such class"
//	@Security		BearerAuth
//	@Router			/v1/classes/{id}/games [post].
func (h *ClassHandler) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req predictsdk.CreateGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	game, err := h.GameService.CreateGame(r.Context(), identity(r).SubjectID, r.PathValue("id"), req.Question)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toGameResponse(game))
}

func callerIdentity(r *http.Request) domain.Identity {
	id := identity(r)
	return domain.Identity{SubjectID: id.SubjectID, Role: domain.Role(id.Role)}
}

func toClassResponse(c domain.Class) predictsdk.ClassResponse {
	return predictsdk.ClassResponse{
		ID:        c.ID,
		Name:      c.Name,
		TeacherID: c.TeacherID,
		JoinCode:  c.JoinCode,
		CreatedAt: c.CreatedAt,
	}
}
