package location

import (
	"context"
	"fmt"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
	"github.com/heartmarshall/carecompanion-backend/pkg/ctxutil"
)

// ListSafeZones returns the caller's active zones, home zone first.
func (s *Service) ListSafeZones(ctx context.Context) ([]domain.SafeZone, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	zones, err := s.zones.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list safe zones: %w", err)
	}
	return zones, nil
}
