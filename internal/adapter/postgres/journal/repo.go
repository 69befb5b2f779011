// Package journal implements the JournalEntry repository using PostgreSQL.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new journal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type created struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// Create inserts a journal entry.
func (r *Repo) Create(ctx context.Context, e domain.JournalEntry) (domain.JournalEntry, error) {
	query, args, err := postgres.Builder().
		Insert("journal_entries").
		Columns("user_id", "content", "voice_transcription").
		Values(e.UserID, e.Content, e.VoiceTranscription).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("build insert journal entry: %w", err)
	}

	var out created
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return domain.JournalEntry{}, postgres.MapError(err, "journal_entry", e.UserID)
	}

	e.ID = out.ID
	e.CreatedAt = out.CreatedAt
	return e, nil
}
