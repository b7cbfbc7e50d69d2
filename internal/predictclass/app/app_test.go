package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewWiresSqliteApplication(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		SessionSecret:        goodSecret,
		SessionIssuer:        "predictclass",
		SessionTTL:           time.Hour,
		DatabaseDriver:       "sqlite",
		DatabaseFile:         filepath.Join(dir, "predictclass.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		ScoringPolicy:        "linear-v1",
		JoinCodeMaxAttempts:  50,
		Env:                  "test",
		LogLevel:             "error",
		ShutdownGracePeriod:  time.Hour,
		HousekeepingInterval: time.Hour,
	}

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	require.FileExists(t, cfg.PepperFile)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{})
	require.ErrorContains(t, err, "SESSION_SECRET")
}
