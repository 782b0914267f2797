// Package main provides an example of sampling one year's analemma and the daily sun events.
package main

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"

	"github.com/devskill-org/analemma/analemma"
	"github.com/devskill-org/analemma/sun"
	"github.com/devskill-org/analemma/utils"
)

func main() {
	riga := datetime.Place{TimeLocation: time.UTC, Latitude: 56.9496, Longitude: 24.1052}
	resolver := sun.NewSuncalcResolver()

	// Sun position at 10:00 UTC on the 1st and 16th of every month
	calendar := analemma.SampleCalendar(2025)
	for i, ts := range analemma.SampleDates(2025, 10, 0) {
		pos := resolver.Position(riga.Latitude, riga.Longitude, ts)
		events := sun.DayEvents(calendar[i], riga)
		fmt.Printf("%s  Altitude: %6.2f°  Azimuth: %6.2f°  Sunrise: %s  Sunset: %s\n",
			utils.GetUTCString(ts),
			pos.Altitude,
			pos.Azimuth,
			utils.GetClockString(events.Sunrise),
			utils.GetClockString(events.Sunset))
	}

	// Equinoxes and solstices
	for i, ts := range sun.SeasonInstants(2025) {
		fmt.Printf("%-18s %s\n", sun.Seasons[i].String()+":", ts.Format(time.RFC3339))
	}
}
