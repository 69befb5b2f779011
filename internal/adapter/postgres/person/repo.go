// Package person implements read access to the memory book (people_records).
package person

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

// Repo provides people record lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new people record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	Name           string    `db:"name"`
	Relationship   string    `db:"relationship"`
	KeyInformation string    `db:"key_information"`
}

// SearchOne runs a full-text search over the user's people records and
// returns the best match.
func (r *Repo) SearchOne(ctx context.Context, userID uuid.UUID, text string) (domain.PersonRecord, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "name", "relationship", "key_information").
		From("people_records").
		Where(sq.Eq{"user_id": userID}).
		Where("search_vector @@ plainto_tsquery('simple', ?)", text).
		OrderByClause("ts_rank(search_vector, plainto_tsquery('simple', ?)) DESC", text).
		OrderBy("name ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.PersonRecord{}, fmt.Errorf("build search people: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.PersonRecord{}, fmt.Errorf("person %q: %w", text, domain.ErrNotFound)
		}
		return domain.PersonRecord{}, postgres.MapError(err, "person", userID)
	}

	return domain.PersonRecord{
		ID:             out.ID,
		UserID:         out.UserID,
		Name:           out.Name,
		Relationship:   out.Relationship,
		KeyInformation: out.KeyInformation,
	}, nil
}
