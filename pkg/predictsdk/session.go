package predictsdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated view of the API.
type Session struct {
	client *SDKClient

	token     string
	expiresAt time.Time
	userID    string
	role      string
}

// Token returns the raw session token.
func (s *Session) Token() string { return s.token }

// ExpiresAt is zero for sessions built with NewSession.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// UserID is empty for sessions built with NewSession; call Me instead.
func (s *Session) UserID() string { return s.userID }

func (s *Session) Role() string { return s.role }

// Me returns the identity the server sees for this session.
func (s *Session) Me(ctx context.Context) (*IdentityResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}

	var id IdentityResponse
	if err := decodeJSON(resp, &id, http.StatusOK); err != nil {
		return nil, err
	}
	return &id, nil
}

// Logout clears the session cookie server side. The token itself stays
// valid until it expires.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/sessions", nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// CreateClass creates a class. Teachers only.
func (s *Session) CreateClass(ctx context.Context, name string) (*ClassResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/classes", CreateClassRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var class ClassResponse
	if err := decodeJSON(resp, &class, http.StatusCreated); err != nil {
		return nil, err
	}
	return &class, nil
}

// JoinClass enrols the caller using a join code. Students only.
func (s *Session) JoinClass(ctx context.Context, joinCode string) (*ClassResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/classes/join", JoinClassRequest{JoinCode: joinCode})
	if err != nil {
		return nil, err
	}

	var class ClassResponse
	if err := decodeJSON(resp, &class, http.StatusOK); err != nil {
		return nil, err
	}
	return &class, nil
}

func (s *Session) GetClass(ctx context.Context, classID string) (*ClassResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/classes/"+url.PathEscape(classID), nil)
	if err != nil {
		return nil, err
	}

	var class ClassResponse
	if err := decodeJSON(resp, &class, http.StatusOK); err != nil {
		return nil, err
	}
	return &class, nil
}

func (s *Session) Leaderboard(ctx context.Context, classID string) (*LeaderboardResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/classes/"+url.PathEscape(classID)+"/leaderboard", nil)
	if err != nil {
		return nil, err
	}

	var board LeaderboardResponse
	if err := decodeJSON(resp, &board, http.StatusOK); err != nil {
		return nil, err
	}
	return &board, nil
}

// CreateGame opens a game in a class the caller teaches.
func (s *Session) CreateGame(ctx context.Context, classID, question string) (*GameResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/classes/"+url.PathEscape(classID)+"/games",
		CreateGameRequest{Question: question})
	if err != nil {
		return nil, err
	}

	var game GameResponse
	if err := decodeJSON(resp, &game, http.StatusCreated); err != nil {
		return nil, err
	}
	return &game, nil
}

// SubmitPrediction records the caller's prediction for an open game.
func (s *Session) SubmitPrediction(ctx context.Context, gameID, choice string, confidence float64) (*PredictionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/games/"+url.PathEscape(gameID)+"/predictions",
		PredictionRequest{Choice: choice, Confidence: &confidence})
	if err != nil {
		return nil, err
	}

	var p PredictionResponse
	if err := decodeJSON(resp, &p, http.StatusCreated); err != nil {
		return nil, err
	}
	return &p, nil
}

// ResolveGame closes a game and returns every prediction as scored.
func (s *Session) ResolveGame(ctx context.Context, gameID, outcome string) (*ResolveGameResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/games/"+url.PathEscape(gameID)+"/resolve",
		ResolveGameRequest{Outcome: outcome})
	if err != nil {
		return nil, err
	}

	var out ResolveGameResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllClasses lists every class in the system. Admins only.
func (s *Session) ListAllClasses(ctx context.Context) (*ListClassesResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/admin/classes", nil)
	if err != nil {
		return nil, err
	}

	var out ListClassesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
