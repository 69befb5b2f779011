package domain

import (
	"time"

	"github.com/google/uuid"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// LocationLog is one position sample reported by a device. Append-only.
type LocationLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	CreatedAt time.Time
}

// Point returns the sample position.
func (l LocationLog) Point() GeoPoint {
	return GeoPoint{Latitude: l.Latitude, Longitude: l.Longitude}
}

// SafeZone is a named circular geofence owned by a user.
type SafeZone struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	CenterLatitude  float64
	CenterLongitude float64
	RadiusMeters    float64
	IsHome          bool
	IsActive        bool
	CreatedAt       time.Time
}

// Center returns the zone center.
func (z SafeZone) Center() GeoPoint {
	return GeoPoint{Latitude: z.CenterLatitude, Longitude: z.CenterLongitude}
}

// LocationAlert is raised by the alerting collaborator when a monitored
// condition trips. This service only reads and acknowledges alerts.
type LocationAlert struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AlertType      string
	Message        string
	IsAcknowledged bool
	CreatedAt      time.Time
	AcknowledgedBy *uuid.UUID
	AcknowledgedAt *time.Time
}

// CaregiverRelationship links a caregiver to the patient they look after.
type CaregiverRelationship struct {
	ID               uuid.UUID
	CaregiverID      uuid.UUID
	PatientID        uuid.UUID
	RelationshipType string
	IsActive         bool
	CreatedAt        time.Time
}
