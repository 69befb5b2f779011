// Package safezone implements read access to safe zones using PostgreSQL.
package safezone

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

const table = "safe_zones"

var columns = []string{
	"id", "user_id", "name", "center_latitude", "center_longitude",
	"radius_meters", "is_home", "is_active", "created_at",
}

// Repo provides safe zone lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new safe zone repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Name            string    `db:"name"`
	CenterLatitude  float64   `db:"center_latitude"`
	CenterLongitude float64   `db:"center_longitude"`
	RadiusMeters    float64   `db:"radius_meters"`
	IsHome          bool      `db:"is_home"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r row) toDomain() domain.SafeZone {
	return domain.SafeZone(r)
}

// HomeZone returns the user's active home zone. A unique index allows at
// most one; the newest wins should legacy data hold more.
func (r *Repo) HomeZone(ctx context.Context, userID uuid.UUID) (domain.SafeZone, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "is_home": true, "is_active": true}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.SafeZone{}, fmt.Errorf("build home zone: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.SafeZone{}, fmt.Errorf("home zone for %s: %w", userID, domain.ErrNotFound)
		}
		return domain.SafeZone{}, postgres.MapError(err, "safe_zone", userID)
	}
	return out.toDomain(), nil
}

// ListActive returns the user's active zones, home zone first.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.SafeZone, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("is_home DESC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list safe zones: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "safe_zone", userID)
	}

	out := make([]domain.SafeZone, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}
