package location

import (
	"math"
	"time"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

// UpdateInput is one GPS fix reported by the device.
type UpdateInput struct {
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	Timestamp *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	v := new(domain.ValidationError)
	if math.IsNaN(i.Latitude) || i.Latitude < -90 || i.Latitude > 90 {
		v.Add("latitude", "must be between -90 and 90")
	}
	if math.IsNaN(i.Longitude) || i.Longitude < -180 || i.Longitude > 180 {
		v.Add("longitude", "must be between -180 and 180")
	}
	if i.Accuracy != nil && (math.IsNaN(*i.Accuracy) || *i.Accuracy < 0) {
		v.Add("accuracy", "must not be negative")
	}
	return v.OrNil()
}

// HomeZoneStatus is the evaluation of the fix against the home zone.
type HomeZoneStatus struct {
	Zone           domain.SafeZone
	Inside         bool
	DistanceMeters float64
}

// UpdateResult is the monitor's answer to one fix.
type UpdateResult struct {
	Log      domain.LocationLog
	Summary  Summary
	HomeZone *HomeZoneStatus
	// Advisory is set when the exit policy fired.
	Advisory string
}
