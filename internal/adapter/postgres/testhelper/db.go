package testhelper

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
)

// Throwaway credentials for the test container.
const (
	pgImage    = "postgres:17-alpine"
	pgUser     = "care"
	pgPassword = "care"
	pgDatabase = "carecompanion_test"
	pgPort     = "5432/tcp"

	bootTimeout = 2 * time.Minute
)

// sharedDB is started on first use and reused by every test in the binary.
// Ryuk removes the container when the test process exits.
var sharedDB struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on a migrated Postgres. Each call gets its own
// pool, closed on cleanup; the database itself is shared, so tests seed
// fresh profiles instead of relying on empty tables.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	sharedDB.once.Do(func() {
		sharedDB.dsn, sharedDB.err = bootDatabase()
	})
	if sharedDB.err != nil {
		t.Fatalf("testhelper: postgres container: %v", sharedDB.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDB.dsn)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func bootDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), bootTimeout)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{pgPort},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			// The entrypoint restarts the server once after init scripts,
			// so the ready line appears twice.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", pgImage, err)
	}

	endpoint, err := c.PortEndpoint(ctx, pgPort, "")
	if err != nil {
		return "", fmt.Errorf("resolve endpoint: %w", err)
	}
	dsn := (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pgUser, pgPassword),
		Host:     endpoint,
		Path:     pgDatabase,
		RawQuery: "sslmode=disable",
	}).String()

	if err := migrateUp(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func migrateUp(ctx context.Context, dsn string) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	defer m.Close()

	if _, err := m.Up(ctx); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
