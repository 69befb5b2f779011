// Package notify delivers nudges to the user. Speech synthesis happens on the
// device, so the server side only records what should be said.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogNudger writes each nudge to the structured log.
type LogNudger struct {
	log *slog.Logger
}

// NewLogNudger creates a LogNudger.
func NewLogNudger(log *slog.Logger) *LogNudger {
	return &LogNudger{log: log.With("adapter", "nudge")}
}

// Nudge never fails.
func (n *LogNudger) Nudge(ctx context.Context, userID uuid.UUID, message string) error {
	n.log.InfoContext(ctx, "nudge",
		slog.String("user_id", userID.String()),
		slog.String("message", message),
	)
	return nil
}
