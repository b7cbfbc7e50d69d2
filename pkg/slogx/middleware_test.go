package slogx_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/predictclass/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddlewareLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "test", Format: "json", Level: "debug", Output: &buf})

	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slogx.FromContext(r.Context()).Debug("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set(slogx.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "req-123", rec.Header().Get(slogx.RequestIDHeader))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inner, outer map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inner))
	require.NoError(t, json.Unmarshal(lines[1], &outer))

	require.Equal(t, "req-123", inner["req_id"])
	require.Equal(t, "http_request", outer["msg"])
	require.EqualValues(t, http.StatusTeapot, outer["status"])
	require.Equal(t, "/v1/me", outer["path"])
}

func TestHTTPMiddlewareGeneratesRequestID(t *testing.T) {
	h := slogx.HTTPMiddleware(slogx.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Len(t, rec.Header().Get(slogx.RequestIDHeader), 26)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, "DEBUG", slogx.ParseLevel("debug").String())
	require.Equal(t, "WARN", slogx.ParseLevel("Warning").String())
	require.Equal(t, "ERROR", slogx.ParseLevel("error").String())
	require.Equal(t, "INFO", slogx.ParseLevel("nonsense").String())
}
