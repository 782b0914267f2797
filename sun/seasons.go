package sun

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"
)

// Season identifies one of the four equinox/solstice events of a year.
type Season int

const (
	MarchEquinox Season = iota
	JuneSolstice
	SeptemberEquinox
	DecemberSolstice
)

// Seasons lists the events in calendar order.
var Seasons = [4]Season{MarchEquinox, JuneSolstice, SeptemberEquinox, DecemberSolstice}

// seasonJDE maps each event to its ephemeris day computation.
var seasonJDE = [4]func(year int) float64{
	MarchEquinox:     solstice.March,
	JuneSolstice:     solstice.June,
	SeptemberEquinox: solstice.September,
	DecemberSolstice: solstice.December,
}

func (s Season) String() string {
	switch s {
	case MarchEquinox:
		return "March equinox"
	case JuneSolstice:
		return "June solstice"
	case SeptemberEquinox:
		return "September equinox"
	case DecemberSolstice:
		return "December solstice"
	default:
		return "unknown"
	}
}

// SeasonInstant returns the UTC instant of the given event in year.
// The difference between dynamical and universal time (about a minute in
// this era) is ignored.
func SeasonInstant(year int, s Season) time.Time {
	return julian.JDToTime(seasonJDE[s](year)).UTC()
}

// SeasonInstants returns the four event instants of year in calendar order.
func SeasonInstants(year int) [4]time.Time {
	var out [4]time.Time
	for i, s := range Seasons {
		out[i] = SeasonInstant(year, s)
	}
	return out
}
