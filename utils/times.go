// utils/times.go
package utils

import (
	"fmt"
	"time"
)

// ParseClock parses a 24-hour "HH:MM" string into minutes since midnight
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesOfDay returns the minutes since midnight of t's time-of-day
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// WithinWindow reports whether t's time-of-day falls inside [open, close].
// Both bounds are bookable.
func WithinWindow(t time.Time, openClock, closeClock string) (bool, error) {
	open, err := ParseClock(openClock)
	if err != nil {
		return false, err
	}
	close, err := ParseClock(closeClock)
	if err != nil {
		return false, err
	}
	m := MinutesOfDay(t)
	return open <= m && m <= close, nil
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
