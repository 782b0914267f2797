package analemma

import (
	"time"

	"cloudeng.io/datetime"

	"github.com/devskill-org/analemma/sun"
)

// sampleDays are the days of every month that get a sample
var sampleDays = []int{1, 16}

// SampleDates returns the 24 sample instants of a year: days 1 and 16 of
// every month at hour:minute UTC, in calendar order. Out of range hour or
// minute values are passed to time.Date unchanged.
func SampleDates(year, hour, minute int) []time.Time {
	dates := make([]time.Time, 0, 12*len(sampleDays))
	for month := time.January; month <= time.December; month++ {
		for _, day := range sampleDays {
			dates = append(dates, time.Date(year, month, day, hour, minute, 0, 0, time.UTC))
		}
	}
	return dates
}

// SampleCalendar returns the calendar dates sampled in year.
func SampleCalendar(year int) []datetime.CalendarDate {
	dates := make([]datetime.CalendarDate, 0, 12*len(sampleDays))
	for month := 1; month <= 12; month++ {
		for _, day := range sampleDays {
			dates = append(dates, datetime.NewCalendarDate(year, datetime.Month(month), day))
		}
	}
	return dates
}

// calendarDate returns the UTC calendar date of t
func calendarDate(t time.Time) datetime.CalendarDate {
	t = t.UTC()
	return datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day())
}

// SeasonMarker describes how one equinox or solstice is marked on the chart.
type SeasonMarker struct {
	Season sun.Season
	Month  time.Month // fixed date, correct for 2018
	Day    int
	Label  string
	// label offset in points, y grows upwards
	OffsetX float64
	OffsetY float64
}

// SeasonMarkers lists the markers in calendar order.
var SeasonMarkers = [4]SeasonMarker{
	{Season: sun.MarchEquinox, Month: time.March, Day: 20, Label: "Mar. Equinox", OffsetX: 10, OffsetY: 1},
	{Season: sun.JuneSolstice, Month: time.June, Day: 21, Label: "Jun. Solstice", OffsetX: 2, OffsetY: 10},
	{Season: sun.SeptemberEquinox, Month: time.September, Day: 23, Label: "Sep. Equinox", OffsetX: -84, OffsetY: -1},
	{Season: sun.DecemberSolstice, Month: time.December, Day: 21, Label: "Dec. Solstice", OffsetX: -2, OffsetY: -20},
}

// SeasonDates returns the four season marker instants at hour:minute UTC.
// The month and day are the 2018 equinox and solstice dates whatever the
// year; use TrueSeasonDates for the actual dates of other years.
func SeasonDates(year, hour, minute int) []time.Time {
	dates := make([]time.Time, 0, len(SeasonMarkers))
	for _, m := range SeasonMarkers {
		dates = append(dates, time.Date(year, m.Month, m.Day, hour, minute, 0, 0, time.UTC))
	}
	return dates
}

// TrueSeasonDates returns hour:minute UTC on the days the equinoxes and
// solstices of year actually fall on.
func TrueSeasonDates(year, hour, minute int) []time.Time {
	instants := sun.SeasonInstants(year)
	dates := make([]time.Time, 0, len(instants))
	for _, ts := range instants {
		dates = append(dates, time.Date(ts.Year(), ts.Month(), ts.Day(), hour, minute, 0, 0, time.UTC))
	}
	return dates
}
