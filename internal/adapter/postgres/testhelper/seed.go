package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates a user profile with the given role and returns its id.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, role string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_profiles (id, role, full_name) VALUES ($1, $2, $3)`,
		id, role, "Test "+role+" "+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return id
}

// SeedCaregiver links caregiverID to patientID.
func SeedCaregiver(t *testing.T, pool *pgxpool.Pool, caregiverID, patientID uuid.UUID, active bool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO caregiver_relationships (caregiver_id, patient_id, is_active) VALUES ($1, $2, $3)`,
		caregiverID, patientID, active,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCaregiver: %v", err)
	}
}

// SeedSafeZone creates an active safe zone.
func SeedSafeZone(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, center domain.GeoPoint, radius float64, home bool) domain.SafeZone {
	t.Helper()

	z := domain.SafeZone{
		UserID:          userID,
		Name:            name,
		CenterLatitude:  center.Latitude,
		CenterLongitude: center.Longitude,
		RadiusMeters:    radius,
		IsHome:          home,
		IsActive:        true,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO safe_zones (user_id, name, center_latitude, center_longitude, radius_meters, is_home)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`,
		userID, name, center.Latitude, center.Longitude, radius, home,
	).Scan(&z.ID, &z.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSafeZone: %v", err)
	}
	return z
}

// SeedAlert creates an unacknowledged alert raised at createdAt.
func SeedAlert(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, alertType string, createdAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO location_alerts (user_id, alert_type, message, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, alertType, "Test alert "+uniqueSuffix(), createdAt,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedAlert: %v", err)
	}
	return id
}

// SeedActivity creates a pending activity.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, scheduled time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO activities (user_id, title, scheduled_time) VALUES ($1, $2, $3) RETURNING id`,
		userID, title, scheduled,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}
	return id
}

// SeedPerson creates a memory book record.
func SeedPerson(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name, relationship, info string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO people_records (user_id, name, relationship, key_information)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, name, relationship, info,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedPerson: %v", err)
	}
	return id
}
