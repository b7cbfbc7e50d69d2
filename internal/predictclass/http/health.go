package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe. Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	predictsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, predictsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe. Pings the database.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	predictsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	predictsdk.HealthResponse	"database unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &predictsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, predictsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
