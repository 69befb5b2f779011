package location

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
	"github.com/heartmarshall/carecompanion-backend/pkg/ctxutil"
)

// AcknowledgeAlert marks an alert as seen by the caller. The patient and
// their active caregivers may acknowledge; anyone else gets ErrNotFound.
// Acknowledging twice keeps the first acknowledger.
func (s *Service) AcknowledgeAlert(ctx context.Context, alertID uuid.UUID) (domain.LocationAlert, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.LocationAlert{}, domain.ErrUnauthorized
	}

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return domain.LocationAlert{}, fmt.Errorf("get alert: %w", err)
	}

	if alert.UserID != callerID {
		allowed, err := s.caregivers.IsActiveCaregiver(ctx, callerID, alert.UserID)
		if err != nil {
			return domain.LocationAlert{}, fmt.Errorf("check caregiver: %w", err)
		}
		if !allowed {
			return domain.LocationAlert{}, domain.ErrNotFound
		}
	}

	acked, err := s.alerts.Acknowledge(ctx, alertID, callerID, s.now())
	if err != nil {
		return domain.LocationAlert{}, fmt.Errorf("acknowledge alert: %w", err)
	}

	s.log.InfoContext(ctx, "alert acknowledged",
		slog.String("alert_id", alertID.String()),
		slog.String("patient_id", alert.UserID.String()),
		slog.String("acknowledged_by", callerID.String()),
	)

	return acked, nil
}
