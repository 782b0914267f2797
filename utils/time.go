// Package utils provides small formatting helpers shared by the analemma packages.
package utils //nolint:revive // utils is a common and acceptable package name

import (
	"fmt"
	"time"
)

// GetUTCString formats a time.Time as YYYY-MM-DD HH:MM in UTC.
func GetUTCString(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

// GetClockString formats the UTC clock time as HH:MM, or --:-- for the zero time.
func GetClockString(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.UTC().Format("15:04")
}

// GetDurationString formats a duration as HHhMM, or --h-- when it is not positive.
func GetDurationString(d time.Duration) string {
	if d <= 0 {
		return "--h--"
	}
	d = d.Round(time.Minute)
	return fmt.Sprintf("%02dh%02d", int(d.Hours()), int(d.Minutes())%60)
}
