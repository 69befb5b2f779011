package voice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

const genericApology = "I'm sorry, something went wrong. Please try again."

// Request is everything an action handler may use.
type Request struct {
	UserID uuid.UUID
	Intent domain.Intent
	Text   string
	// Origin is the device position sent with the command, if any.
	Origin *domain.GeoPoint
}

// HandlerFunc performs one action and returns the spoken reply. A returned
// error is replaced by the handler's apology text.
type HandlerFunc func(ctx context.Context, req Request) (string, error)

type route struct {
	handle  HandlerFunc
	apology string
}

type failureRecorder interface {
	HandlerFailure(intent string)
}

// Dispatcher routes a classified intent to its registered handler.
type Dispatcher struct {
	routes   map[domain.CommandType]route
	failures failureRecorder
	log      *slog.Logger
}

// NewDispatcher returns a Dispatcher with no handlers registered.
func NewDispatcher(log *slog.Logger, failures failureRecorder) *Dispatcher {
	return &Dispatcher{
		routes:   make(map[domain.CommandType]route),
		failures: failures,
		log:      log,
	}
}

// Register binds a handler to an intent type. An empty apology falls back to
// a generic one.
func (d *Dispatcher) Register(t domain.CommandType, apology string, h HandlerFunc) {
	if apology == "" {
		apology = genericApology
	}
	d.routes[t] = route{handle: h, apology: apology}
}

// Dispatch runs the handler for req.Intent.Type. It always produces a reply:
// unknown types and general chatter get the fallback text, handler errors
// get the apology.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) string {
	rt, ok := d.routes[req.Intent.Type]
	if !ok {
		return fallbackReply(req.Text)
	}

	text, err := rt.handle(ctx, req)
	if err != nil {
		d.log.ErrorContext(ctx, "voice handler failed",
			slog.String("user_id", req.UserID.String()),
			slog.String("intent", req.Intent.Type.String()),
			slog.String("error", err.Error()),
		)
		if d.failures != nil {
			d.failures.HandlerFailure(req.Intent.Type.String())
		}
		return rt.apology
	}
	return text
}

func fallbackReply(text string) string {
	return fmt.Sprintf("I understand you said: %s. How can I help you with that?", text)
}
