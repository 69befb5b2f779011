// Package location implements the LocationLog repository using PostgreSQL.
package location

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

const table = "location_logs"

var columns = []string{"id", "user_id", "latitude", "longitude", "accuracy", "created_at"}

// Repo provides location log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new location log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	Accuracy  *float64  `db:"accuracy"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.LocationLog {
	return domain.LocationLog{
		ID:        r.ID,
		UserID:    r.UserID,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Accuracy:  r.Accuracy,
		CreatedAt: r.CreatedAt,
	}
}

// Create appends a position sample. CreatedAt is stored as given.
func (r *Repo) Create(ctx context.Context, l domain.LocationLog) (domain.LocationLog, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "latitude", "longitude", "accuracy", "created_at").
		Values(l.UserID, l.Latitude, l.Longitude, l.Accuracy, l.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.LocationLog{}, fmt.Errorf("build insert location log: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&l.ID); err != nil {
		return domain.LocationLog{}, postgres.MapError(err, "location_log", l.UserID)
	}
	return l, nil
}

// Latest returns the user's most recent sample.
func (r *Repo) Latest(ctx context.Context, userID uuid.UUID) (domain.LocationLog, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.LocationLog{}, fmt.Errorf("build latest location log: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.LocationLog{}, fmt.Errorf("location_log for %s: %w", userID, domain.ErrNotFound)
		}
		return domain.LocationLog{}, postgres.MapError(err, "location_log", userID)
	}
	return out.toDomain(), nil
}

// DeleteOlderThan removes samples created before threshold and returns how
// many were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete location logs: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "location_log", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}
