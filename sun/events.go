package sun

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"
)

// Events holds the daily sun events for one date at one place.
// Sunrise and Sunset are zero when the sun does not cross the horizon,
// PolarDay tells whether it then stays above it.
type Events struct {
	Sunrise   time.Time
	Sunset    time.Time
	SolarNoon time.Time
	PolarDay  bool
}

// DayEvents returns sunrise, sunset and solar noon for date at place,
// expressed in the place's time location (UTC when unset).
func DayEvents(date datetime.CalendarDate, place datetime.Place) Events {
	loc := place.TimeLocation
	if loc == nil {
		loc = time.UTC
	}
	lat, lon := place.Latitude, NormalizeLongitude(place.Longitude)

	rise, set := sunrise.SunriseSunset(lat, lon, date.Year(), time.Month(date.Month()), date.Day())

	noonDate := time.Date(date.Year(), time.Month(date.Month()), date.Day(), 12, 0, 0, 0, time.UTC)
	noon := suncalc.GetTimes(noonDate, lat, lon)["solarNoon"].Value

	events := Events{SolarNoon: noon.In(loc)}
	if !rise.IsZero() && !set.IsZero() {
		events.Sunrise = rise.In(loc)
		events.Sunset = set.In(loc)
		return events
	}

	// no crossing: the altitude at solar noon tells day from night
	events.PolarDay = suncalc.GetPosition(noon, lat, lon).Altitude > 0
	return events
}

// HasSunrise reports whether the sun rises and sets on this day
func (e Events) HasSunrise() bool {
	return !e.Sunrise.IsZero() && !e.Sunset.IsZero()
}

// DayLength returns the time between sunrise and sunset, 24h for polar
// day and zero for polar night.
func (e Events) DayLength() time.Duration {
	if !e.HasSunrise() {
		if e.PolarDay {
			return 24 * time.Hour
		}
		return 0
	}
	return e.Sunset.Sub(e.Sunrise)
}
