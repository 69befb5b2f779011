// Package activity implements the Activity repository using PostgreSQL.
package activity

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

const table = "activities"

var columns = []string{
	"id", "user_id", "title", "scheduled_time", "priority_level",
	"completion_status", "completed_at", "created_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID               uuid.UUID  `db:"id"`
	UserID           uuid.UUID  `db:"user_id"`
	Title            string     `db:"title"`
	ScheduledTime    time.Time  `db:"scheduled_time"`
	PriorityLevel    string     `db:"priority_level"`
	CompletionStatus string     `db:"completion_status"`
	CompletedAt      *time.Time `db:"completed_at"`
	CreatedAt        time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.Activity {
	return domain.Activity{
		ID:               r.ID,
		UserID:           r.UserID,
		Title:            r.Title,
		ScheduledTime:    r.ScheduledTime,
		PriorityLevel:    domain.PriorityLevel(r.PriorityLevel),
		CompletionStatus: domain.CompletionStatus(r.CompletionStatus),
		CompletedAt:      r.CompletedAt,
		CreatedAt:        r.CreatedAt,
	}
}

// Create inserts a planned activity.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "title", "scheduled_time", "priority_level", "completion_status").
		Values(a.UserID, a.Title, a.ScheduledTime, string(a.PriorityLevel), string(a.CompletionStatus)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Activity{}, fmt.Errorf("build insert activity: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", a.UserID)
	}
	return out.toDomain(), nil
}

// FindPendingByTitle returns the earliest scheduled pending activity whose
// title contains fragment, case-insensitively. The row is locked when called
// inside a transaction.
func (r *Repo) FindPendingByTitle(ctx context.Context, userID uuid.UUID, fragment string) (domain.Activity, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "completion_status": string(domain.CompletionPending)}).
		Where(sq.ILike{"title": "%" + EscapeLike(fragment) + "%"}).
		OrderBy("scheduled_time ASC").
		Limit(1).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return domain.Activity{}, fmt.Errorf("build find pending activity: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.Activity{}, fmt.Errorf("pending activity %q: %w", fragment, domain.ErrNotFound)
		}
		return domain.Activity{}, postgres.MapError(err, "activity", userID)
	}
	return out.toDomain(), nil
}

// MarkCompleted moves a pending activity to completed.
func (r *Repo) MarkCompleted(ctx context.Context, userID, id uuid.UUID, at time.Time) (domain.Activity, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("completion_status", string(domain.CompletionCompleted)).
		Set("completed_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "user_id": userID, "completion_status": string(domain.CompletionPending)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Activity{}, fmt.Errorf("build complete activity: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.Activity{}, fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
		}
		return domain.Activity{}, postgres.MapError(err, "activity", id)
	}
	return out.toDomain(), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
