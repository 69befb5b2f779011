package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/carecompanion-backend/internal/provider"
	"github.com/heartmarshall/carecompanion-backend/internal/service/directions"
)

type directionsService interface {
	Guidance(ctx context.Context, input directions.GuidanceInput) (provider.GeneratedText, error)
}

// DirectionsHandler serves walking guidance.
type DirectionsHandler struct {
	svc directionsService
	log *slog.Logger
}

// NewDirectionsHandler creates a DirectionsHandler.
func NewDirectionsHandler(svc directionsService, logger *slog.Logger) *DirectionsHandler {
	return &DirectionsHandler{svc: svc, log: logger.With("handler", "directions")}
}

type directionsRequest struct {
	Destination string     `json:"destination"`
	Origin      *pointJSON `json:"origin,omitempty"`
}

type sourceJSON struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type directionsResponse struct {
	Text    string       `json:"text"`
	Sources []sourceJSON `json:"sources"`
}

// Guidance handles POST /api/directions.
func (h *DirectionsHandler) Guidance(w http.ResponseWriter, r *http.Request) {
	var req directionsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Guidance(r.Context(), directions.GuidanceInput{
		Destination: req.Destination,
		Origin:      req.Origin.toDomain(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := directionsResponse{Text: res.Text, Sources: make([]sourceJSON, 0, len(res.Citations))}
	for _, c := range res.Citations {
		out.Sources = append(out.Sources, sourceJSON{Title: c.Title, URI: c.URI})
	}
	writeJSON(w, http.StatusOK, out)
}
