package http

import (
	"net/http"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

type GameHandler struct {
	GameService *service.GameService
}

// HandlePredict godoc
//
//	@Summary		Submit a prediction
//	@Description	Records the calling student's choice and confidence for an open game. One prediction per student per game.
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Game ID"
//	@Param			request	body		predictsdk.PredictionRequest	true	"Prediction"
//	@Success		201		{object}	predictsdk.PredictionResponse	"Prediction recorded"
//	@Failure		400		{object}	httpx.ErrorResponse				"invalid_confidence or invalid_request"
//	@Failure		403		{object}	httpx.ErrorResponse				"Not enrolled"
//	@Failure		404		{object}	httpx.ErrorResponse				"No such game"
//	@Failure		409		{object}	httpx.ErrorResponse				"Already predicted or game resolved"
//	@Security		BearerAuth
//	@Router			/v1/games/{id}/predictions [post].
func (h *GameHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictsdk.PredictionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Confidence == nil {
		httpx.WriteError(w, http.StatusBadRequest, predictsdk.ErrorCodeInvalidConfidence, "confidence is required")
		return
	}

	p, err := h.GameService.SubmitPrediction(r.Context(), identity(r).SubjectID, r.PathValue("id"), req.Choice, *req.Confidence)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPredictionResponse(p))
}

// HandleResolve godoc
//
//	@Summary		Resolve a game
//	@Description	Closes a game with its outcome and scores every prediction once. Choices match the outcome case-insensitively.
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Game ID"
//	@Param			request	body		predictsdk.ResolveGameRequest	true	"Outcome"
//	@Success		200		{object}	predictsdk.ResolveGameResponse	"Game resolved"
//	@Failure		403		{object}	httpx.ErrorResponse				"Not the class teacher"
//	@Failure		404		{object}	httpx.ErrorResponse				"No such game"
//	@Failure		409		{object}	httpx.ErrorResponse				"Already resolved"
//	@Security		BearerAuth
//	@Router			/v1/games/{id}/resolve [post].
func (h *GameHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var req predictsdk.ResolveGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.GameService.ResolveGame(r.Context(), identity(r).SubjectID, r.PathValue("id"), req.Outcome)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := predictsdk.ResolveGameResponse{
		Game:        toGameResponse(res.Game),
		Predictions: make([]predictsdk.PredictionResponse, len(res.Predictions)),
	}
	for i, p := range res.Predictions {
		resp.Predictions[i] = toPredictionResponse(p)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func toGameResponse(g domain.Game) predictsdk.GameResponse {
	return predictsdk.GameResponse{
		ID:         g.ID,
		ClassID:    g.ClassID,
		Question:   g.Question,
		Outcome:    g.Outcome,
		ResolvedAt: g.ResolvedAt,
		CreatedAt:  g.CreatedAt,
	}
}

func toPredictionResponse(p domain.Prediction) predictsdk.PredictionResponse {
	return predictsdk.PredictionResponse{
		ID:         p.ID,
		GameID:     p.GameID,
		StudentID:  p.StudentID,
		Choice:     p.Choice,
		Confidence: p.Confidence,
		IsCorrect:  p.IsCorrect,
		Points:     p.Points,
		CreatedAt:  p.CreatedAt,
	}
}
