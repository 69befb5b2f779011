package domain

import (
	"time"

	"github.com/google/uuid"
)

// Intent is the classified purpose of an utterance. It is never persisted.
type Intent struct {
	Type       CommandType
	Action     string
	Parameters map[string]string
}

// Param returns the named parameter or an empty string.
func (i Intent) Param(name string) string {
	return i.Parameters[name]
}

// VoiceCommand is the record kept for every processed utterance.
type VoiceCommand struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CommandText      string
	CommandType      CommandType
	IntentParameters map[string]string
	ResponseText     string
	IsProcessed      bool
	CreatedAt        time.Time
}
