// Package location runs the location safety monitor: log the fix, check it
// against the home zone, report recent alerts and caregiver coverage.
package location

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/carecompanion-backend/internal/config"
	"github.com/heartmarshall/carecompanion-backend/internal/domain"
	"github.com/heartmarshall/carecompanion-backend/internal/geofence"
)

type locationRepo interface {
	Create(ctx context.Context, l domain.LocationLog) (domain.LocationLog, error)
}

type safeZoneRepo interface {
	HomeZone(ctx context.Context, userID uuid.UUID) (domain.SafeZone, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]domain.SafeZone, error)
}

type alertRepo interface {
	ListUnacknowledgedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.LocationAlert, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.LocationAlert, error)
	Acknowledge(ctx context.Context, id, by uuid.UUID, at time.Time) (domain.LocationAlert, error)
}

type caregiverRepo interface {
	CountActiveForPatient(ctx context.Context, patientID uuid.UUID) (int, error)
	IsActiveCaregiver(ctx context.Context, caregiverID, patientID uuid.UUID) (bool, error)
}

// Nudger delivers a short spoken or textual prompt to the user.
type Nudger interface {
	Nudge(ctx context.Context, userID uuid.UUID, message string) error
}

type recorder interface {
	LocationUpdate(ok bool)
	GeofenceExit()
}

// Service is the location safety monitor.
type Service struct {
	locations  locationRepo
	zones      safeZoneRepo
	alerts     alertRepo
	caregivers caregiverRepo
	aggregator *Aggregator
	policy     geofence.ExitPolicy
	nudger     Nudger
	metrics    recorder
	cfg        config.MonitorConfig
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a location Service. A nil policy means SingleSample.
func NewService(
	log *slog.Logger,
	cfg config.MonitorConfig,
	locations locationRepo,
	zones safeZoneRepo,
	alerts alertRepo,
	caregivers caregiverRepo,
	policy geofence.ExitPolicy,
	nudger Nudger,
	metrics recorder,
) *Service {
	if policy == nil {
		policy = geofence.SingleSample{}
	}
	log = log.With("service", "location")
	return &Service{
		locations:  locations,
		zones:      zones,
		alerts:     alerts,
		caregivers: caregivers,
		aggregator: NewAggregator(log, alerts, caregivers, cfg.AlertWindow),
		policy:     policy,
		nudger:     nudger,
		metrics:    metrics,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
	}
}
