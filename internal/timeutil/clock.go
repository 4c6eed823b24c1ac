// Package timeutil provides minute-of-day arithmetic and schedule window
// matching over "HH:MM" clock strings and "YYYY-MM-DD" dates.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the canonical date format for all persisted dates.
	DateLayout = "2006-01-02"

	// ClockLayout is the canonical wall-clock format.
	ClockLayout = "15:04"

	minutesPerDay = 24 * 60
)

// ParseClock validates an "HH:MM" string and returns the minute of day.
func ParseClock(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q: out of range", clock)
	}
	return h*60 + m, nil
}

// MinutesOfDay converts an "HH:MM" string to minutes since midnight.
// Malformed input yields 0; validation belongs at the command boundary.
func MinutesOfDay(clock string) int {
	m, err := ParseClock(clock)
	if err != nil {
		return 0
	}
	return m
}

// FormatClock renders hours and minutes as "HH:MM".
func FormatClock(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// MinutesToClock converts minutes since midnight back to "HH:MM".
func MinutesToClock(minutes int) string {
	return FormatClock(minutes/60, minutes%60)
}

// ClockOf formats the wall-clock portion of t.
func ClockOf(t time.Time) string {
	return t.Format(ClockLayout)
}

// DateOf formats the date portion of t.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// HoursBetween returns the duration between two clock values in decimal
// hours. An end earlier than the start is read as crossing midnight, so
// the result is always forward and non-negative.
func HoursBetween(start, end string) float64 {
	s := MinutesOfDay(start)
	e := MinutesOfDay(end)
	if e < s {
		e += minutesPerDay
	}
	return float64(e-s) / 60
}

// TimeInRange reports whether current falls inside [start, end], both ends
// inclusive. A start later than the end denotes an overnight window
// (e.g. 22:00-06:00), which matches when current is past the start or
// before the end. Every auto-start/stop decision goes through this rule.
func TimeInRange(current, start, end string) bool {
	c := MinutesOfDay(current)
	s := MinutesOfDay(start)
	e := MinutesOfDay(end)
	if s > e {
		return c >= s || c <= e
	}
	return c >= s && c <= e
}

// WeekRange returns the Monday-start week containing t as inclusive
// YYYY-MM-DD bounds.
func WeekRange(t time.Time) (string, string) {
	offset := (int(t.Weekday()) + 6) % 7 // days since Monday
	start := t.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return DateOf(start), DateOf(end)
}

// MonthRange returns the calendar month containing t as inclusive
// YYYY-MM-DD bounds.
func MonthRange(t time.Time) (string, string) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return DateOf(start), DateOf(end)
}

// FormatHours renders decimal hours as "2h 15m", "45m" or "3h".
func FormatHours(hours float64) string {
	total := int(hours*60 + 0.5)
	h, m := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// DayName returns the English weekday name for a 0=Sunday index.
func DayName(dayOfWeek int) string {
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	return names[dayOfWeek]
}
