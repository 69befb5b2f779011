package rest

import (
	"net/http"

	"github.com/heartmarshall/carecompanion-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Voice      *VoiceHandler
	Location   *LocationHandler
	Directions *DirectionsHandler
	Metrics    http.Handler
}

// NewRouter mounts the probes and metrics unauthenticated and every /api
// route behind auth.
func NewRouter(h Handlers, auth middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	api := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, auth(fn))
	}

	api("POST /api/voice/commands", h.Voice.ProcessCommand)
	api("GET /api/voice/commands", h.Voice.ListCommands)

	api("POST /api/location/updates", h.Location.ReportLocation)
	api("POST /api/location/alerts/{id}/acknowledge", h.Location.AcknowledgeAlert)
	api("GET /api/location/safe-zones", h.Location.ListSafeZones)

	api("POST /api/directions", h.Directions.Guidance)

	return mux
}
