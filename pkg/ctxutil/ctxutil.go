// Package ctxutil carries request-scoped values across layers: the acting
// user, the request id and the caller's timezone.
package ctxutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type key int

const (
	userIDKey key = iota
	requestIDKey
	timezoneKey
)

func value[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx reports false when no user is set or the stored id is uuid.Nil.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := value[uuid.UUID](ctx, userIDKey)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := value[string](ctx, requestIDKey)
	return id
}

func WithTimezone(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, timezoneKey, loc)
}

// TimezoneFromCtx falls back to UTC.
func TimezoneFromCtx(ctx context.Context) *time.Location {
	if loc, _ := value[*time.Location](ctx, timezoneKey); loc != nil {
		return loc
	}
	return time.UTC
}

// zones caches successful lookups; every request carries a zone header and
// time.LoadLocation reads tzdata from disk.
var zones sync.Map

// ParseTimezone resolves an IANA zone name, falling back to UTC for empty or
// unknown names.
func ParseTimezone(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	if loc, ok := zones.Load(name); ok {
		return loc.(*time.Location)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	zones.Store(name, loc)
	return loc
}
