// Package voice interprets spoken commands: classify, dispatch to exactly one
// action handler, persist the turn, reply with text.
package voice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/voicecommand"
	"github.com/heartmarshall/carecompanion-backend/internal/config"
	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

type commandRepo interface {
	Create(ctx context.Context, cmd domain.VoiceCommand) (domain.VoiceCommand, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter voicecommand.ListFilter) ([]domain.VoiceCommand, error)
}

type navigationRepo interface {
	Create(ctx context.Context, s domain.NavigationSession) (domain.NavigationSession, error)
}

type activityRepo interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	FindPendingByTitle(ctx context.Context, userID uuid.UUID, fragment string) (domain.Activity, error)
	MarkCompleted(ctx context.Context, userID, id uuid.UUID, at time.Time) (domain.Activity, error)
}

type personRepo interface {
	SearchOne(ctx context.Context, userID uuid.UUID, text string) (domain.PersonRecord, error)
}

type journalRepo interface {
	Create(ctx context.Context, e domain.JournalEntry) (domain.JournalEntry, error)
}

type locationRepo interface {
	Latest(ctx context.Context, userID uuid.UUID) (domain.LocationLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	VoiceCommand(intent string)
	HandlerFailure(intent string)
}

// Service processes voice commands for the authenticated user.
type Service struct {
	commands   commandRepo
	navigation navigationRepo
	activities activityRepo
	people     personRepo
	journal    journalRepo
	locations  locationRepo
	tx         txManager
	metrics    recorder
	dispatcher *Dispatcher
	cfg        config.VoiceConfig
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a voice Service and registers its action handlers.
func NewService(
	log *slog.Logger,
	cfg config.VoiceConfig,
	commands commandRepo,
	navigation navigationRepo,
	activities activityRepo,
	people personRepo,
	journal journalRepo,
	locations locationRepo,
	tx txManager,
	metrics recorder,
) *Service {
	log = log.With("service", "voice")
	s := &Service{
		commands:   commands,
		navigation: navigation,
		activities: activities,
		people:     people,
		journal:    journal,
		locations:  locations,
		tx:         tx,
		metrics:    metrics,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
	}

	s.dispatcher = NewDispatcher(log, metrics)
	s.dispatcher.Register(domain.CommandTypeNavigation, apologyNavigation, s.startNavigation)
	s.dispatcher.Register(domain.CommandTypeReminder, apologyReminder, s.createReminder)
	s.dispatcher.Register(domain.CommandTypeMemoryRecall, "", s.recallPerson)
	s.dispatcher.Register(domain.CommandTypeJournalEntry, apologyJournal, s.createJournalEntry)
	s.dispatcher.Register(domain.CommandTypeActivityLog, apologyActivity, s.completeActivity)

	return s
}
