package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/notify"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/alert"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/caregiver"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/journal"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/location"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/navigation"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/person"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/safezone"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres/voicecommand"
	"github.com/heartmarshall/carecompanion-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/carecompanion-backend/internal/auth"
	"github.com/heartmarshall/carecompanion-backend/internal/config"
	"github.com/heartmarshall/carecompanion-backend/internal/geofence"
	"github.com/heartmarshall/carecompanion-backend/internal/metrics"
	"github.com/heartmarshall/carecompanion-backend/internal/provider"
	"github.com/heartmarshall/carecompanion-backend/internal/service/directions"
	locationsvc "github.com/heartmarshall/carecompanion-backend/internal/service/location"
	"github.com/heartmarshall/carecompanion-backend/internal/service/voice"
	"github.com/heartmarshall/carecompanion-backend/internal/transport/middleware"
	"github.com/heartmarshall/carecompanion-backend/internal/transport/rest"
)

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (provider.GeneratedText, error)
}

// Run loads configuration, connects to the database, wires the services and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	gen, err := newTextGenerator(ctx, cfg.Directions, logger)
	if err != nil {
		return err
	}

	handler, cleanup := newHandler(cfg, pool, gen, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", slog.Int("count", len(applied)))
	return nil
}

// newHandler wires repositories, services and middleware around the router.
// The returned cleanup stops background workers.
func newHandler(cfg *config.Config, pool *pgxpool.Pool, gen textGenerator, logger *slog.Logger) (http.Handler, func()) {
	m := metrics.New()
	txm := postgres.NewTxManager(pool, postgres.WithIsolation(pgx.RepeatableRead))

	locations := location.New(pool)
	alerts := alert.New(pool)
	caregivers := caregiver.New(pool)

	voiceSvc := voice.NewService(logger, cfg.Voice,
		voicecommand.New(pool),
		navigation.New(pool),
		activity.New(pool),
		person.New(pool),
		journal.New(pool),
		locations,
		txm,
		m,
	)

	locationSvc := locationsvc.NewService(logger, cfg.Monitor,
		locations,
		safezone.New(pool),
		alerts,
		caregivers,
		geofence.SingleSample{},
		notify.NewLogNudger(logger),
		m,
	)

	directionsSvc := directions.NewService(logger, gen, cfg.Directions.CacheTTL)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)

	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, Version, map[string]bool{"directions": gen != nil}),
		Voice:      rest.NewVoiceHandler(voiceSvc, logger),
		Location:   rest.NewLocationHandler(locationSvc, logger),
		Directions: rest.NewDirectionsHandler(directionsSvc, logger),
		Metrics:    m.Handler(),
	}, middleware.Auth(jwtManager))

	cleanup := func() {}
	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		cleanup = limiter.Stop
		rateLimit = limiter.Limit(cfg.RateLimit.PerMinute)
	}

	// Metrics reads the matched route pattern, so it must wrap the mux itself.
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
		middleware.Timezone,
		middleware.Metrics(m),
	)(mux), cleanup
}

// newTextGenerator returns a nil interface when directions are disabled so
// the directions service reports itself unavailable.
func newTextGenerator(ctx context.Context, cfg config.DirectionsConfig, logger *slog.Logger) (textGenerator, error) {
	if !cfg.Enabled() {
		logger.Info("directions disabled: no api key configured")
		return nil, nil
	}

	p, err := gemini.NewProvider(ctx, gemini.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("directions provider: %w", err)
	}
	return p, nil
}
