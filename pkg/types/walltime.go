package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWallTime is returned when a value does not match the HH:MM format.
var ErrInvalidWallTime = errors.New("invalid wall time format, expected HH:MM")

// wallTimeLayout is the canonical HH:MM layout for wall-clock values.
const wallTimeLayout = "15:04"

// WallTime is a local wall-clock time of day ("09:30") with no date and no
// timezone attached. Working hours and breaks are authored as WallTime values
// and only become absolute instants once combined with a date and a zone.
type WallTime string

// NewWallTime builds a WallTime from the clock reading of t.
func NewWallTime(t time.Time) WallTime {
	return WallTime(t.Format(wallTimeLayout))
}

// NewWallTimeFromString parses an HH:MM string into a WallTime.
func NewWallTimeFromString(s string) (WallTime, error) {
	if _, err := time.Parse(wallTimeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidWallTime, s)
	}
	return WallTime(s), nil
}

// Validate checks that the value matches the HH:MM format.
func (w WallTime) Validate() error {
	if _, err := time.Parse(wallTimeLayout, string(w)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidWallTime, string(w))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (w WallTime) IsZero() bool {
	return w == ""
}

// Minutes returns the value as minutes since midnight.
// Invalid values count as 0.
func (w WallTime) Minutes() int {
	t, err := time.Parse(wallTimeLayout, string(w))
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// IsBefore reports whether w is strictly earlier in the day than other.
func (w WallTime) IsBefore(other WallTime) bool {
	return w.Minutes() < other.Minutes()
}

// IsAfter reports whether w is strictly later in the day than other.
func (w WallTime) IsAfter(other WallTime) bool {
	return w.Minutes() > other.Minutes()
}

// AddMinutes returns the wall time m minutes later on the same day.
// Results at or past midnight of the next day are an error: working windows
// never span day boundaries.
func (w WallTime) AddMinutes(m int) (WallTime, error) {
	total := w.Minutes() + m
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes leaves the day", ErrInvalidWallTime, string(w), m)
	}
	if total == 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes reaches midnight", ErrInvalidWallTime, string(w), m)
	}
	return WallTime(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// OnDate combines the wall time with the calendar date of d in the given zone
// and returns the absolute instant in UTC. The zone's UTC offset is resolved
// for that specific date, so zones with DST behave correctly.
func (w WallTime) OnDate(d time.Time, loc *time.Location) time.Time {
	t, err := time.Parse(wallTimeLayout, string(w))
	if err != nil {
		t = time.Time{}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc).UTC()
}

// WallTimeOf splits an absolute instant into its calendar date (midnight in
// loc) and wall-clock time as perceived in loc. It is the inverse of OnDate:
// WallTimeOf(w.OnDate(d, loc), loc) yields (d, w) for any valid pair.
func WallTimeOf(instant time.Time, loc *time.Location) (time.Time, WallTime) {
	local := instant.In(loc)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return date, NewWallTime(local)
}

// String returns the HH:MM representation.
func (w WallTime) String() string {
	return string(w)
}
