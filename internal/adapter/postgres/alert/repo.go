// Package alert implements read and acknowledge access to location alerts.
// Alerts are raised elsewhere; this repository never inserts them.
package alert

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

const table = "location_alerts"

var columns = []string{
	"id", "user_id", "alert_type", "message", "is_acknowledged",
	"created_at", "acknowledged_by", "acknowledged_at",
}

// Repo provides location alert access backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new alert repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	AlertType      string     `db:"alert_type"`
	Message        string     `db:"message"`
	IsAcknowledged bool       `db:"is_acknowledged"`
	CreatedAt      time.Time  `db:"created_at"`
	AcknowledgedBy *uuid.UUID `db:"acknowledged_by"`
	AcknowledgedAt *time.Time `db:"acknowledged_at"`
}

func (r row) toDomain() domain.LocationAlert {
	return domain.LocationAlert(r)
}

// ListUnacknowledgedSince returns the user's open alerts raised at or after
// since, newest first.
func (r *Repo) ListUnacknowledgedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.LocationAlert, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "is_acknowledged": false}).
		Where(sq.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list alerts: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "location_alert", userID)
	}

	out := make([]domain.LocationAlert, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// GetByID returns one alert.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.LocationAlert, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.LocationAlert{}, fmt.Errorf("build get alert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.LocationAlert{}, fmt.Errorf("location_alert %s: %w", id, domain.ErrNotFound)
		}
		return domain.LocationAlert{}, postgres.MapError(err, "location_alert", id)
	}
	return out.toDomain(), nil
}

// Acknowledge marks an alert as handled by the given user.
// Acknowledging twice keeps the first acknowledger.
func (r *Repo) Acknowledge(ctx context.Context, id, by uuid.UUID, at time.Time) (domain.LocationAlert, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_acknowledged", true).
		Set("acknowledged_by", sq.Expr("COALESCE(acknowledged_by, ?)", by)).
		Set("acknowledged_at", sq.Expr("COALESCE(acknowledged_at, ?)", at)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.LocationAlert{}, fmt.Errorf("build acknowledge alert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.LocationAlert{}, fmt.Errorf("location_alert %s: %w", id, domain.ErrNotFound)
		}
		return domain.LocationAlert{}, postgres.MapError(err, "location_alert", id)
	}
	return out.toDomain(), nil
}
