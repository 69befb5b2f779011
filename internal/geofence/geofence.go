// Package geofence decides whether a position lies inside a circular safe zone.
package geofence

import (
	"math"

	"github.com/heartmarshall/carecompanion-backend/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

// Distance returns the haversine great-circle distance in meters.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	a = math.Min(a, 1) // rounding near antipodes
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Inside reports whether the position is within the zone. The boundary counts as inside.
func Inside(lat, lon float64, zone domain.SafeZone) bool {
	return Distance(lat, lon, zone.CenterLatitude, zone.CenterLongitude) <= zone.RadiusMeters
}

// Evaluation is the result of checking one position against one zone.
type Evaluation struct {
	Zone           domain.SafeZone
	Inside         bool
	DistanceMeters float64
}

// Evaluate checks p against zone.
func Evaluate(p domain.GeoPoint, zone domain.SafeZone) Evaluation {
	d := Distance(p.Latitude, p.Longitude, zone.CenterLatitude, zone.CenterLongitude)
	return Evaluation{Zone: zone, Inside: d <= zone.RadiusMeters, DistanceMeters: d}
}

// ExitPolicy decides whether an evaluation counts as having left the zone.
type ExitPolicy interface {
	Exited(Evaluation) bool
}

// SingleSample flags an exit as soon as one sample lies outside the radius.
// GPS jitter at the boundary can produce false positives.
type SingleSample struct{}

func (SingleSample) Exited(e Evaluation) bool { return !e.Inside }
