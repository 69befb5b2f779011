package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
	"github.com/heartmarshall/carecompanion-backend/internal/service/location"
)

type locationService interface {
	ReportLocation(ctx context.Context, input location.UpdateInput) (location.UpdateResult, error)
	AcknowledgeAlert(ctx context.Context, alertID uuid.UUID) (domain.LocationAlert, error)
	ListSafeZones(ctx context.Context) ([]domain.SafeZone, error)
}

// LocationHandler serves the location monitor endpoints.
type LocationHandler struct {
	svc locationService
	log *slog.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(svc locationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: logger.With("handler", "location")}
}

type locationUpdateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Timestamp *string  `json:"timestamp,omitempty"`
}

type currentLocationJSON struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type recentAlertJSON struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type homeZoneJSON struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Inside         bool    `json:"inside"`
	DistanceMeters float64 `json:"distance_meters"`
	RadiusMeters   float64 `json:"radius_meters"`
}

type locationUpdateResponse struct {
	Success            bool                `json:"success"`
	LocationLogged     bool                `json:"location_logged"`
	AlertsCount        int                 `json:"alerts_count"`
	CaregiversNotified int                 `json:"caregivers_notified"`
	CurrentLocation    currentLocationJSON `json:"current_location"`
	RecentAlerts       []recentAlertJSON   `json:"recent_alerts,omitempty"`
	HomeZone           *homeZoneJSON       `json:"home_zone,omitempty"`
	Advisory           string              `json:"advisory,omitempty"`
}

type alertJSON struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Message        string     `json:"message"`
	IsAcknowledged bool       `json:"is_acknowledged"`
	CreatedAt      time.Time  `json:"created_at"`
	AcknowledgedBy *string    `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}

type safeZoneJSON struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CenterLatitude  float64   `json:"center_latitude"`
	CenterLongitude float64   `json:"center_longitude"`
	RadiusMeters    float64   `json:"radius_meters"`
	IsHome          bool      `json:"is_home"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func writeLocationError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "error": message})
}

// ReportLocation handles POST /api/location/updates.
func (h *LocationHandler) ReportLocation(w http.ResponseWriter, r *http.Request) {
	var req locationUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeLocationError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeLocationError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	input := location.UpdateInput{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
	}
	if req.Timestamp != nil && *req.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			writeLocationError(w, http.StatusBadRequest, "timestamp must be RFC 3339")
			return
		}
		input.Timestamp = &ts
	}

	res, err := h.svc.ReportLocation(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			writeLocationError(w, http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, domain.ErrValidation):
			writeLocationError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.ErrorContext(r.Context(), "location update failed", slog.String("error", err.Error()))
			writeLocationError(w, http.StatusBadRequest, "failed to log location")
		}
		return
	}

	writeJSON(w, http.StatusOK, toLocationUpdateResponse(res))
}

func toLocationUpdateResponse(res location.UpdateResult) locationUpdateResponse {
	out := locationUpdateResponse{
		Success:            true,
		LocationLogged:     true,
		AlertsCount:        res.Summary.AlertsCount,
		CaregiversNotified: res.Summary.CaregiversNotified,
		CurrentLocation: currentLocationJSON{
			Latitude:  res.Log.Latitude,
			Longitude: res.Log.Longitude,
			Timestamp: res.Log.CreatedAt,
		},
		Advisory: res.Advisory,
	}
	for _, a := range res.Summary.RecentAlerts {
		out.RecentAlerts = append(out.RecentAlerts, recentAlertJSON{
			ID:        a.ID.String(),
			Type:      a.Type,
			Message:   a.Message,
			CreatedAt: a.CreatedAt,
		})
	}
	if hz := res.HomeZone; hz != nil {
		out.HomeZone = &homeZoneJSON{
			ID:             hz.Zone.ID.String(),
			Name:           hz.Zone.Name,
			Inside:         hz.Inside,
			DistanceMeters: hz.DistanceMeters,
			RadiusMeters:   hz.Zone.RadiusMeters,
		}
	}
	return out
}

// AcknowledgeAlert handles POST /api/location/alerts/{id}/acknowledge.
func (h *LocationHandler) AcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	alertID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid alert id")
		return
	}

	alert, err := h.svc.AcknowledgeAlert(r.Context(), alertID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := alertJSON{
		ID:             alert.ID.String(),
		Type:           alert.AlertType,
		Message:        alert.Message,
		IsAcknowledged: alert.IsAcknowledged,
		CreatedAt:      alert.CreatedAt,
		AcknowledgedAt: alert.AcknowledgedAt,
	}
	if alert.AcknowledgedBy != nil {
		by := alert.AcknowledgedBy.String()
		out.AcknowledgedBy = &by
	}
	writeJSON(w, http.StatusOK, map[string]any{"alert": out})
}

// ListSafeZones handles GET /api/location/safe-zones.
func (h *LocationHandler) ListSafeZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.svc.ListSafeZones(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]safeZoneJSON, 0, len(zones))
	for _, z := range zones {
		out = append(out, safeZoneJSON{
			ID:              z.ID.String(),
			Name:            z.Name,
			CenterLatitude:  z.CenterLatitude,
			CenterLongitude: z.CenterLongitude,
			RadiusMeters:    z.RadiusMeters,
			IsHome:          z.IsHome,
			IsActive:        z.IsActive,
			CreatedAt:       z.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"safe_zones": out})
}
