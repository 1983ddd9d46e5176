package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// GameDay returns midnight UTC on the given day of February 2024, the month
// the sample fixtures are played in.
func GameDay(day int) time.Time {
	return time.Date(2024, time.February, day, 0, 0, 0, 0, time.UTC)
}
