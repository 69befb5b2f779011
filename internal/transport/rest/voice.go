package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
	"github.com/heartmarshall/carecompanion-backend/internal/service/voice"
)

type voiceService interface {
	ProcessCommand(ctx context.Context, input voice.ProcessInput) (voice.ProcessResult, error)
	ListCommands(ctx context.Context, input voice.ListInput) ([]domain.VoiceCommand, error)
}

// VoiceHandler serves the voice command endpoints.
type VoiceHandler struct {
	svc voiceService
	log *slog.Logger
}

// NewVoiceHandler creates a VoiceHandler.
func NewVoiceHandler(svc voiceService, logger *slog.Logger) *VoiceHandler {
	return &VoiceHandler{svc: svc, log: logger.With("handler", "voice")}
}

type pointJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p *pointJSON) toDomain() *domain.GeoPoint {
	if p == nil {
		return nil
	}
	return &domain.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}

type voiceCommandRequest struct {
	CommandText *string    `json:"command_text"`
	AudioURL    string     `json:"audio_url,omitempty"`
	Location    *pointJSON `json:"location,omitempty"`
}

type voiceCommandResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Intent   string `json:"intent"`
	Action   string `json:"action"`
}

type voiceCommandJSON struct {
	ID               string            `json:"id"`
	CommandText      string            `json:"command_text"`
	CommandType      string            `json:"command_type"`
	IntentParameters map[string]string `json:"intent_parameters"`
	ResponseText     string            `json:"response_text"`
	IsProcessed      bool              `json:"is_processed"`
	CreatedAt        time.Time         `json:"created_at"`
}

// ProcessCommand handles POST /api/voice/commands.
func (h *VoiceHandler) ProcessCommand(w http.ResponseWriter, r *http.Request) {
	var req voiceCommandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// An empty utterance is still a turn and gets the general reply; only a
	// body without the field is rejected.
	if req.CommandText == nil {
		writeError(w, http.StatusBadRequest, "command_text is required")
		return
	}

	res, err := h.svc.ProcessCommand(r.Context(), voice.ProcessInput{
		Text:     *req.CommandText,
		AudioURL: req.AudioURL,
		Location: req.Location.toDomain(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, voiceCommandResponse{
		Success:  true,
		Response: res.Response,
		Intent:   res.Intent.String(),
		Action:   res.Action,
	})
}

// ListCommands handles GET /api/voice/commands?type=&limit=.
func (h *VoiceHandler) ListCommands(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := voice.ListInput{Type: q.Get("type")}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		input.Limit = n
	}

	cmds, err := h.svc.ListCommands(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]voiceCommandJSON, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, voiceCommandJSON{
			ID:               c.ID.String(),
			CommandText:      c.CommandText,
			CommandType:      c.CommandType.String(),
			IntentParameters: c.IntentParameters,
			ResponseText:     c.ResponseText,
			IsProcessed:      c.IsProcessed,
			CreatedAt:        c.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"commands": out})
}
