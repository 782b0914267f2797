package analemma

import (
	"fmt"
	"io"
	"strings"

	"cloudeng.io/datetime"

	"github.com/devskill-org/analemma/sun"
	"github.com/devskill-org/analemma/utils"
)

const (
	tableTop    = "┌────┬──────────────────┬─────────┬─────────┬─────────┬─────────┬────────────┬─────────┬───────────────┐"
	tableHeader = "│  # │  Date (UTC)      │ Alt (°) │  Az (°) │ Sunrise │  Sunset │ Solar Noon │ Day Len │ Marker        │"
	tableSep    = "├────┼──────────────────┼─────────┼─────────┼─────────┼─────────┼────────────┼─────────┼───────────────┤"
	tableBottom = "└────┴──────────────────┴─────────┴─────────┴─────────┴─────────┴────────────┴─────────┴───────────────┘"
)

// DailyEvents holds the sun events of each sampled calendar date.
type DailyEvents map[datetime.CalendarDate]sun.Events

// ResolveEvents looks up the sun events of every sample and season date
// of a result at its observer.
func ResolveEvents(result *Result) DailyEvents {
	events := make(DailyEvents, len(result.Samples)+len(result.Seasons))
	for _, cd := range SampleCalendar(result.Year) {
		events[cd] = sun.DayEvents(cd, result.Observer)
	}
	for _, s := range result.Seasons {
		cd := calendarDate(s.Time)
		if _, ok := events[cd]; !ok {
			events[cd] = sun.DayEvents(cd, result.Observer)
		}
	}
	return events
}

// WriteTable prints the samples of a result, followed by the season
// samples, with the daily sun events of each date. Dates missing from
// events are shown without sunrise and sunset.
func WriteTable(w io.Writer, result *Result, events DailyEvents) error {
	var b strings.Builder

	b.WriteString(tableTop + "\n")
	b.WriteString(tableHeader + "\n")
	b.WriteString(tableSep + "\n")

	row := 1
	for _, s := range result.Samples {
		writeRow(&b, row, s, events[calendarDate(s.Time)], "")
		row++
	}

	if len(result.Seasons) > 0 {
		b.WriteString(tableSep + "\n")
		for _, s := range result.Seasons {
			writeRow(&b, row, s.Sample, events[calendarDate(s.Time)], s.Marker.Label)
			row++
		}
	}

	b.WriteString(tableBottom + "\n")

	above := 0
	for _, s := range result.Samples {
		if s.Position.Altitude > 0 {
			above++
		}
	}
	fmt.Fprintf(&b, "Samples above the horizon: %d of %d\n", above, len(result.Samples))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, row int, s Sample, events sun.Events, marker string) {
	fmt.Fprintf(b, "│ %2d │ %16s │ %7.2f │ %7.2f │  %5s  │  %5s  │    %5s   │  %5s  │ %-13s │\n",
		row,
		utils.GetUTCString(s.Time),
		s.Position.Altitude,
		s.Position.Azimuth,
		utils.GetClockString(events.Sunrise),
		utils.GetClockString(events.Sunset),
		utils.GetClockString(events.SolarNoon),
		utils.GetDurationString(events.DayLength()),
		marker,
	)
}
