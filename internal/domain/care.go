package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a planned task or reminder on the user's schedule.
type Activity struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Title            string
	ScheduledTime    time.Time
	PriorityLevel    PriorityLevel
	CompletionStatus CompletionStatus
	CompletedAt      *time.Time
	CreatedAt        time.Time
}

// PersonRecord is an entry of the user's memory book.
type PersonRecord struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Relationship   string
	KeyInformation string
}

// JournalEntry is a free-text diary entry, usually dictated.
type JournalEntry struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Content            string
	VoiceTranscription *string
	CreatedAt          time.Time
}

// NavigationSession is a guided trip started by voice.
// StartLocation is nil when the device position was not known.
type NavigationSession struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Destination          string
	StartLocation        *GeoPoint
	VoiceGuidanceEnabled bool
	Status               NavigationStatus
	StartedAt            time.Time
}
