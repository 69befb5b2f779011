package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

// DefaultAlertWindow is the trailing lookback for unacknowledged alerts. It
// must equal the dedup window of whatever raises the alerts.
const DefaultAlertWindow = 5 * time.Minute

type alertLister interface {
	ListUnacknowledgedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.LocationAlert, error)
}

type caregiverCounter interface {
	CountActiveForPatient(ctx context.Context, patientID uuid.UUID) (int, error)
}

// AlertSummary is the projection of an alert returned to the device.
type AlertSummary struct {
	ID        uuid.UUID
	Type      string
	Message   string
	CreatedAt time.Time
}

// Summary reports recent alerts and caregiver coverage. Both counts are
// always set, zero when the read failed.
type Summary struct {
	AlertsCount        int
	CaregiversNotified int
	RecentAlerts       []AlertSummary
}

// Aggregator summarizes alerts without ever creating them.
type Aggregator struct {
	alerts     alertLister
	caregivers caregiverCounter
	window     time.Duration
	log        *slog.Logger
}

// NewAggregator returns an Aggregator. A non-positive window means DefaultAlertWindow.
func NewAggregator(log *slog.Logger, alerts alertLister, caregivers caregiverCounter, window time.Duration) *Aggregator {
	if window <= 0 {
		window = DefaultAlertWindow
	}
	return &Aggregator{alerts: alerts, caregivers: caregivers, window: window, log: log}
}

// Summarize runs both reads concurrently. The group has no shared context,
// so one failed read never cancels the other; each failure degrades only its
// own half of the summary and is logged once after Wait.
func (a *Aggregator) Summarize(ctx context.Context, userID uuid.UUID, now time.Time) Summary {
	var (
		alerts    []domain.LocationAlert
		caregiven int

		alertsErr, countErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		list, err := a.alerts.ListUnacknowledgedSince(ctx, userID, now.Add(-a.window))
		if err != nil {
			alertsErr = fmt.Errorf("recent alerts: %w", err)
			return alertsErr
		}
		alerts = list
		return nil
	})
	g.Go(func() error {
		n, err := a.caregivers.CountActiveForPatient(ctx, userID)
		if err != nil {
			countErr = fmt.Errorf("caregiver count: %w", err)
			return countErr
		}
		caregiven = n
		return nil
	})
	if err := g.Wait(); err != nil {
		a.log.WarnContext(ctx, "alert summary degraded",
			slog.String("user_id", userID.String()),
			slog.String("error", errors.Join(alertsErr, countErr).Error()),
		)
	}

	s := Summary{AlertsCount: len(alerts), CaregiversNotified: caregiven}
	if len(alerts) > 0 {
		s.RecentAlerts = make([]AlertSummary, 0, len(alerts))
		for _, al := range alerts {
			s.RecentAlerts = append(s.RecentAlerts, AlertSummary{
				ID:        al.ID,
				Type:      al.AlertType,
				Message:   al.Message,
				CreatedAt: al.CreatedAt,
			})
		}
	}
	return s
}
