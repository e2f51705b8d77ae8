package http

import (
	"net/http"
	"time"

	"github.com/lif-platforms/mailservice/internal/mail/store"
	"github.com/lif-platforms/mailservice/pkg/httpx"
	"github.com/lif-platforms/mailservice/pkg/mailapi"
)

// WelcomeHandler handles GET /
//
//	@Summary	Welcome
//	@Produce	json
//	@Success	200	{string}	string
//	@Router		/ [get].
func WelcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, "Welcome to the Lif Mail Service")
	}
}

// LivezHandler godoc
//
//	@Summary	Liveness Probe
//	@Produce	json
//	@Success	200	{object}	mailapi.HealthResponse
//	@Router		/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, mailapi.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary	Readiness Probe
//	@Produce	json
//	@Success	200	{object}	mailapi.HealthResponse
//	@Failure	503	{object}	mailapi.HealthResponse
//	@Router		/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &mailapi.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, mailapi.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
