// Package navigation implements the NavigationSession repository using PostgreSQL.
package navigation

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

// Repo provides navigation session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new navigation session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type created struct {
	ID        uuid.UUID `db:"id"`
	Status    string    `db:"status"`
	StartedAt time.Time `db:"started_at"`
}

// Create starts a navigation session. A nil StartLocation is stored as NULL.
func (r *Repo) Create(ctx context.Context, s domain.NavigationSession) (domain.NavigationSession, error) {
	var lat, lng *float64
	if s.StartLocation != nil {
		lat, lng = &s.StartLocation.Latitude, &s.StartLocation.Longitude
	}

	query, args, err := postgres.Builder().
		Insert("navigation_sessions").
		Columns("user_id", "destination", "start_latitude", "start_longitude", "voice_guidance_enabled").
		Values(s.UserID, s.Destination, lat, lng, s.VoiceGuidanceEnabled).
		Suffix("RETURNING id, status, started_at").
		ToSql()
	if err != nil {
		return domain.NavigationSession{}, fmt.Errorf("build insert navigation session: %w", err)
	}

	var out created
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return domain.NavigationSession{}, postgres.MapError(err, "navigation_session", s.UserID)
	}

	s.ID = out.ID
	s.Status = domain.NavigationStatus(out.Status)
	s.StartedAt = out.StartedAt
	return s, nil
}
