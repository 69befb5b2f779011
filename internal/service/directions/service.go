// Package directions produces simple walking guidance through an external
// text generator, caching answers for a short while.
package directions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
	"github.com/heartmarshall/carecompanion-backend/internal/provider"
	"github.com/heartmarshall/carecompanion-backend/pkg/ctxutil"
)

const (
	maxDestinationLen = 200
	// defaultCacheTTL replaces a non-positive ttl, which go-cache would read
	// as "never expire".
	defaultCacheTTL = 10 * time.Minute
)

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (provider.GeneratedText, error)
}

// Service answers directions requests.
type Service struct {
	gen   textGenerator
	cache *cache.Cache
	log   *slog.Logger
}

// NewService creates a directions Service. A nil generator makes every call
// return domain.ErrUnavailable.
func NewService(log *slog.Logger, gen textGenerator, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Service{
		gen:   gen,
		cache: cache.New(ttl, 2*ttl),
		log:   log.With("service", "directions"),
	}
}

// GuidanceInput names where the user wants to go and, optionally, where they are.
type GuidanceInput struct {
	Destination string
	Origin      *domain.GeoPoint
}

// Validate checks all fields and collects all errors.
func (i GuidanceInput) Validate() error {
	var errs []domain.FieldError

	dest := strings.TrimSpace(i.Destination)
	if dest == "" {
		errs = append(errs, domain.FieldError{Field: "destination", Message: "required"})
	}
	if utf8.RuneCountInString(dest) > maxDestinationLen {
		errs = append(errs, domain.FieldError{Field: "destination", Message: "max 200 characters"})
	}
	if o := i.Origin; o != nil {
		if o.Latitude < -90 || o.Latitude > 90 || o.Longitude < -180 || o.Longitude > 180 {
			errs = append(errs, domain.FieldError{Field: "origin", Message: "invalid coordinates"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Guidance returns step-by-step walking directions.
func (s *Service) Guidance(ctx context.Context, input GuidanceInput) (provider.GeneratedText, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return provider.GeneratedText{}, domain.ErrUnauthorized
	}
	if s.gen == nil {
		return provider.GeneratedText{}, domain.ErrUnavailable
	}
	if err := input.Validate(); err != nil {
		return provider.GeneratedText{}, err
	}

	key := cacheKey(input)
	if cached, found := s.cache.Get(key); found {
		return cached.(provider.GeneratedText), nil
	}

	out, err := s.gen.Generate(ctx, prompt(input))
	if err != nil {
		return provider.GeneratedText{}, fmt.Errorf("generate directions: %w", err)
	}
	s.cache.SetDefault(key, out)

	s.log.InfoContext(ctx, "directions generated",
		slog.String("user_id", userID.String()),
		slog.Int("citations", len(out.Citations)),
	)
	return out, nil
}

func prompt(in GuidanceInput) string {
	dest := strings.TrimSpace(in.Destination)
	from := "my current location"
	if in.Origin != nil {
		from = fmt.Sprintf("my current location (around latitude %.5f, longitude %.5f)",
			in.Origin.Latitude, in.Origin.Longitude)
	}
	return fmt.Sprintf("Provide simple, step-by-step walking directions from %s to %q. "+
		"Focus on major landmarks if possible. "+
		"Keep it very clear and easy to follow for someone who might be disoriented.", from, dest)
}

// cacheKey rounds the origin to roughly 100 m so nearby requests share answers.
func cacheKey(in GuidanceInput) string {
	dest := strings.ToLower(strings.TrimSpace(in.Destination))
	if in.Origin == nil {
		return dest
	}
	return fmt.Sprintf("%s|%.3f,%.3f", dest, in.Origin.Latitude, in.Origin.Longitude)
}
