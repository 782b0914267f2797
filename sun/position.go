// Package sun resolves the apparent position of the sun and the daily and
// yearly events derived from it.
package sun

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// Position is the apparent position of the sun in degrees.
// Azimuth is measured clockwise from north, altitude from the horizon.
type Position struct {
	Altitude float64 `json:"altitude"`
	Azimuth  float64 `json:"azimuth"`
}

// Resolver maps an observer location and an instant to a solar position.
type Resolver interface {
	Altitude(lat, lon float64, t time.Time) float64
	Azimuth(lat, lon float64, t time.Time) float64
	Position(lat, lon float64, t time.Time) Position
}

// SuncalcResolver resolves solar positions with suncalc.
type SuncalcResolver struct{}

// NewSuncalcResolver creates a new suncalc backed resolver
func NewSuncalcResolver() *SuncalcResolver {
	return &SuncalcResolver{}
}

// Altitude returns the solar altitude in degrees
func (r *SuncalcResolver) Altitude(lat, lon float64, t time.Time) float64 {
	return r.Position(lat, lon, t).Altitude
}

// Azimuth returns the solar azimuth in degrees from north
func (r *SuncalcResolver) Azimuth(lat, lon float64, t time.Time) float64 {
	return r.Position(lat, lon, t).Azimuth
}

// Position returns both altitude and azimuth in degrees
func (r *SuncalcResolver) Position(lat, lon float64, t time.Time) Position {
	pos := suncalc.GetPosition(t.UTC(), lat, NormalizeLongitude(lon))

	// suncalc measures azimuth from south towards west
	return Position{
		Altitude: pos.Altitude * 180 / math.Pi,
		Azimuth:  NormalizeAzimuth(pos.Azimuth*180/math.Pi + 180),
	}
}

// NormalizeLongitude maps a longitude onto [-180, 180).
func NormalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// NormalizeAzimuth maps an azimuth onto [0, 360).
func NormalizeAzimuth(az float64) float64 {
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	return az
}
