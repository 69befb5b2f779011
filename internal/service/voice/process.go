package voice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/voicecommand"
	"github.com/heartmarshall/carecompanion-backend/internal/domain"
	"github.com/heartmarshall/carecompanion-backend/internal/intent"
	"github.com/heartmarshall/carecompanion-backend/pkg/ctxutil"
)

// ProcessCommand classifies the utterance, runs its handler and records the
// turn. Handler failures still produce a reply; only a missing identity or
// invalid input is returned as an error.
func (s *Service) ProcessCommand(ctx context.Context, input ProcessInput) (ProcessResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ProcessResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxCommandLength); err != nil {
		return ProcessResult{}, err
	}

	text := strings.TrimSpace(input.Text)
	in := intent.Classify(text)

	reply := s.dispatcher.Dispatch(ctx, Request{
		UserID: userID,
		Intent: in,
		Text:   text,
		Origin: input.Location,
	})

	if s.metrics != nil {
		s.metrics.VoiceCommand(in.Type.String())
	}

	_, err := s.commands.Create(ctx, domain.VoiceCommand{
		UserID:           userID,
		CommandText:      text,
		CommandType:      in.Type,
		IntentParameters: in.Parameters,
		ResponseText:     reply,
		IsProcessed:      true,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "persist voice command",
			slog.String("user_id", userID.String()),
			slog.String("intent", in.Type.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "voice command processed",
		slog.String("user_id", userID.String()),
		slog.String("intent", in.Type.String()),
		slog.String("action", in.Action),
		slog.Bool("has_audio", input.AudioURL != ""),
	)

	return ProcessResult{Response: reply, Intent: in.Type, Action: in.Action}, nil
}

// ListCommands returns the caller's command history, newest first.
func (s *Service) ListCommands(ctx context.Context, input ListInput) ([]domain.VoiceCommand, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}

	filter := voicecommand.ListFilter{Limit: uint64(limit)}
	if input.Type != "" {
		t := domain.CommandType(input.Type)
		filter.Type = &t
	}

	cmds, err := s.commands.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list voice commands: %w", err)
	}
	return cmds, nil
}
