// Package voicecommand implements the VoiceCommand repository using PostgreSQL.
package voicecommand

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

const table = "voice_commands"

var columns = []string{
	"id", "user_id", "command_text", "command_type", "intent_data",
	"response_text", "is_processed", "created_at",
}

// Repo provides voice command persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new voice command repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID         `db:"id"`
	UserID       uuid.UUID         `db:"user_id"`
	CommandText  string            `db:"command_text"`
	CommandType  string            `db:"command_type"`
	IntentData   map[string]string `db:"intent_data"`
	ResponseText *string           `db:"response_text"`
	IsProcessed  bool              `db:"is_processed"`
	CreatedAt    time.Time         `db:"created_at"`
}

func (r row) toDomain() domain.VoiceCommand {
	cmd := domain.VoiceCommand{
		ID:               r.ID,
		UserID:           r.UserID,
		CommandText:      r.CommandText,
		CommandType:      domain.CommandType(r.CommandType),
		IntentParameters: r.IntentData,
		IsProcessed:      r.IsProcessed,
		CreatedAt:        r.CreatedAt,
	}
	if r.ResponseText != nil {
		cmd.ResponseText = *r.ResponseText
	}
	return cmd
}

// Create inserts a processed command record and returns it with generated fields.
func (r *Repo) Create(ctx context.Context, cmd domain.VoiceCommand) (domain.VoiceCommand, error) {
	params := cmd.IntentParameters
	if params == nil {
		params = map[string]string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "command_text", "command_type", "intent_data", "response_text", "is_processed").
		Values(cmd.UserID, cmd.CommandText, string(cmd.CommandType), params, cmd.ResponseText, cmd.IsProcessed).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.VoiceCommand{}, fmt.Errorf("build insert voice command: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return domain.VoiceCommand{}, postgres.MapError(err, "voice_command", cmd.UserID)
	}
	return out.toDomain(), nil
}

// ListFilter narrows ListByUser.
type ListFilter struct {
	Type  *domain.CommandType
	Limit uint64
}

// ListByUser returns the user's commands, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]domain.VoiceCommand, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if filter.Type != nil {
		b = b.Where(sq.Eq{"command_type": string(*filter.Type)})
	}
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list voice commands: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "voice_command", userID)
	}

	out := make([]domain.VoiceCommand, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}
