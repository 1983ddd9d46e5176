package timeutil

import (
	"time"
	_ "time/tzdata"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Display layouts used by the profile view.
const (
	DayMonthYear      = "02/01/2006"
	DayMonthShortYear = "02/01/06"
	EventLayout       = "2006-01-02 15:04:05"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatOr formats t with layout, or returns fallback for the zero time.
func FormatOr(t time.Time, layout, fallback string) string {
	if t.IsZero() {
		return fallback
	}
	return t.Format(layout)
}

// Age returns completed years between born and now. ok is false when born is
// unknown or in the future.
func Age(born, now time.Time) (years int, ok bool) {
	if born.IsZero() || born.After(now) {
		return 0, false
	}
	years = now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	return years, true
}

// ResolveLocation returns the location for a tz name, or UTC if it is empty or unknown.
func ResolveLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
