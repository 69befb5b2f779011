package voice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
	"github.com/heartmarshall/carecompanion-backend/internal/intent"
	"github.com/heartmarshall/carecompanion-backend/pkg/ctxutil"
)

const (
	apologyNavigation = "I'm sorry, I couldn't start navigation. Please try again."
	apologyReminder   = "I'm sorry, I couldn't create the reminder. Please try again."
	apologyJournal    = "I'm sorry, I couldn't save your journal entry. Please try again."
	apologyActivity   = "I'm sorry, I couldn't mark the activity as completed. Please try again."

	journalSaved = "I've saved your journal entry. Is there anything else you'd like to record?"
)

func (s *Service) startNavigation(ctx context.Context, req Request) (string, error) {
	destination := req.Intent.Param(intent.ParamDestination)

	_, err := s.navigation.Create(ctx, domain.NavigationSession{
		UserID:               req.UserID,
		Destination:          destination,
		StartLocation:        s.startLocation(ctx, req),
		VoiceGuidanceEnabled: true,
		Status:               domain.NavigationActive,
	})
	if err != nil {
		return "", fmt.Errorf("create navigation session: %w", err)
	}

	return fmt.Sprintf("Starting navigation to %s. I'll guide you with voice directions.", destination), nil
}

// startLocation prefers the position sent with the command, then the last
// logged fix. Nil means unknown.
func (s *Service) startLocation(ctx context.Context, req Request) *domain.GeoPoint {
	if req.Origin != nil {
		return req.Origin
	}
	last, err := s.locations.Latest(ctx, req.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "latest location lookup failed",
				slog.String("user_id", req.UserID.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}
	p := last.Point()
	return &p
}

func (s *Service) createReminder(ctx context.Context, req Request) (string, error) {
	task := req.Intent.Param(intent.ParamTask)
	when := req.Intent.Param(intent.ParamTime)

	now := s.now().In(ctxutil.TimezoneFromCtx(ctx))
	scheduled, resolved := intent.ResolveTime(when, now)
	if !resolved {
		s.log.DebugContext(ctx, "reminder time unresolved, using now",
			slog.String("phrase", when),
		)
	}

	_, err := s.activities.Create(ctx, domain.Activity{
		UserID:           req.UserID,
		Title:            task,
		ScheduledTime:    scheduled,
		PriorityLevel:    domain.PriorityMedium,
		CompletionStatus: domain.CompletionPending,
	})
	if err != nil {
		return "", fmt.Errorf("create activity: %w", err)
	}

	return fmt.Sprintf("I've set a reminder for \"%s\" at %s.", task, when), nil
}

func (s *Service) recallPerson(ctx context.Context, req Request) (string, error) {
	person := req.Intent.Param(intent.ParamPerson)

	rec, err := s.people.SearchOne(ctx, req.UserID, person)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "person search failed",
				slog.String("user_id", req.UserID.String()),
				slog.String("error", err.Error()),
			)
		}
		return fmt.Sprintf("I couldn't find information about %s in your memory book.", person), nil
	}

	return fmt.Sprintf("%s is your %s. %s", rec.Name, rec.Relationship, rec.KeyInformation), nil
}

func (s *Service) createJournalEntry(ctx context.Context, req Request) (string, error) {
	transcription := req.Text
	_, err := s.journal.Create(ctx, domain.JournalEntry{
		UserID:             req.UserID,
		Content:            req.Text,
		VoiceTranscription: &transcription,
	})
	if err != nil {
		return "", fmt.Errorf("create journal entry: %w", err)
	}
	return journalSaved, nil
}

func (s *Service) completeActivity(ctx context.Context, req Request) (string, error) {
	fragment := req.Intent.Param(intent.ParamActivity)

	var (
		title string
		found bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pending, err := s.activities.FindPendingByTitle(txCtx, req.UserID, fragment)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(txCtx, "pending activity lookup failed",
					slog.String("user_id", req.UserID.String()),
					slog.String("error", err.Error()),
				)
			}
			return nil
		}

		done, err := s.activities.MarkCompleted(txCtx, req.UserID, pending.ID, s.now())
		if err != nil {
			return fmt.Errorf("mark activity completed: %w", err)
		}
		title, found = done.Title, true
		return nil
	})
	if err != nil {
		return "", err
	}

	if !found {
		return fmt.Sprintf("I couldn't find a pending activity matching \"%s\".", fragment), nil
	}
	return fmt.Sprintf("Great! I've marked \"%s\" as completed.", title), nil
}
