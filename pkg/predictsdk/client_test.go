package predictsdk

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginAndAuthenticatedCall(t *testing.T) {
	t.Parallel()

	exp := time.Date(2025, 3, 1, 21, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "tess", req.Username)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(SessionResponse{
			Token: "tok", TokenType: "Bearer", ExpiresAt: exp, UserID: "u1", Role: RoleTeacher,
		})
	})
	mux.HandleFunc("POST /v1/games/{id}/predictions", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "g1", r.PathValue("id"))

		var req PredictionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Confidence)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(PredictionResponse{ID: "p1", GameID: "g1", Choice: req.Choice, Confidence: *req.Confidence})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewSDKClient(srv.URL + "/")
	session, err := client.Login(t.Context(), "tess", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "tok", session.Token())
	require.Equal(t, "u1", session.UserID())
	require.Equal(t, RoleTeacher, session.Role())
	require.True(t, exp.Equal(session.ExpiresAt()))

	p, err := session.SubmitPrediction(t.Context(), "g1", "yes", 0.75)
	require.NoError(t, err)
	require.Equal(t, "p1", p.ID)
	require.InDelta(t, 0.75, p.Confidence, 1e-9)
}

func TestErrorResponsesBecomeAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/password-reset/confirm":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"token_expired","message":"reset token has expired"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>upstream down</html>"))
		}
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)

	err := client.ConfirmPasswordReset(t.Context(), "t", "new password")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, ErrorCodeTokenExpired, apiErr.Code)
	require.Equal(t, "reset token has expired", apiErr.Message)

	_, err = client.GetLiveness(t.Context())
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestNewSessionSendsToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer kept" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized","message":"authentication required"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(IdentityResponse{UserID: "u9", Role: RoleStudent})
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)

	me, err := client.NewSession("kept").Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "u9", me.UserID)

	_, err = client.NewSession("stale").Me(t.Context())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeUnauthorized, apiErr.Code)
}
