package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
	"github.com/heartmarshall/carecompanion-backend/internal/geofence"
	"github.com/heartmarshall/carecompanion-backend/pkg/ctxutil"
)

// ReportLocation logs the fix and evaluates it. Only the insert is critical;
// the follow-up reads degrade to empty results.
func (s *Service) ReportLocation(ctx context.Context, input UpdateInput) (UpdateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return UpdateResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return UpdateResult{}, err
	}

	now := s.now()
	createdAt := now
	if input.Timestamp != nil {
		createdAt = *input.Timestamp
	}

	logged, err := s.locations.Create(ctx, domain.LocationLog{
		UserID:    userID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Accuracy:  input.Accuracy,
		CreatedAt: createdAt,
	})
	if err != nil {
		s.record(false)
		return UpdateResult{}, fmt.Errorf("log location: %w", err)
	}
	s.record(true)

	var (
		home    *domain.SafeZone
		summary Summary
	)
	// Summarize degrades on its own; only the zone lookup reports through
	// the group, and a failed lookup skips the geofence evaluation.
	var g errgroup.Group
	g.Go(func() error {
		zone, err := s.zones.HomeZone(ctx, userID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil
		case err != nil:
			return fmt.Errorf("home zone: %w", err)
		}
		home = &zone
		return nil
	})
	g.Go(func() error {
		summary = s.aggregator.Summarize(ctx, userID, now)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.WarnContext(ctx, "geofence check skipped",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	result := UpdateResult{Log: logged, Summary: summary}
	if home == nil {
		return result, nil
	}

	eval := geofence.Evaluate(logged.Point(), *home)
	result.HomeZone = &HomeZoneStatus{
		Zone:           eval.Zone,
		Inside:         eval.Inside,
		DistanceMeters: eval.DistanceMeters,
	}

	if s.policy.Exited(eval) {
		result.Advisory = advisory(eval)
		if s.metrics != nil {
			s.metrics.GeofenceExit()
		}
		s.log.InfoContext(ctx, "outside home zone",
			slog.String("user_id", userID.String()),
			slog.String("zone_id", home.ID.String()),
			slog.Float64("distance_m", eval.DistanceMeters),
			slog.Float64("radius_m", home.RadiusMeters),
		)
		s.nudge(ctx, userID, result.Advisory)
	}

	return result, nil
}

func advisory(e geofence.Evaluation) string {
	return fmt.Sprintf("You seem to be outside %s, about %.0f meters away. Would you like directions home?",
		e.Zone.Name, e.DistanceMeters)
}

func (s *Service) nudge(ctx context.Context, userID uuid.UUID, message string) {
	if !s.cfg.NudgeEnabled || s.nudger == nil {
		return
	}
	if err := s.nudger.Nudge(ctx, userID, message); err != nil {
		s.log.WarnContext(ctx, "nudge failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) record(ok bool) {
	if s.metrics != nil {
		s.metrics.LocationUpdate(ok)
	}
}
