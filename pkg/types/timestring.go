package types

import (
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" 24-hour format.
type TimeString string

const timeStringLayout = "15:04"

const minutesPerDay = 24 * 60

// NewTimeString creates a TimeString from a time.Time, truncating to minutes.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses a strict "HH:MM" string.
// Returns an error for anything that is not a zero-padded 24-hour clock time.
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) != 5 || s[2] != ':' {
		return "", fmt.Errorf("invalid time format %q: expected HH:MM", s)
	}

	hours, ok1 := twoDigits(s[0], s[1])
	minutes, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 {
		return "", fmt.Errorf("invalid time format %q: expected HH:MM", s)
	}

	if hours > 23 {
		return "", fmt.Errorf("invalid time %q: hours out of range", s)
	}
	if minutes > 59 {
		return "", fmt.Errorf("invalid time %q: minutes out of range", s)
	}

	return TimeString(s), nil
}

// NewTimeStringFromMinutes creates a TimeString from a minute offset since midnight.
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", fmt.Errorf("minute offset %d out of range [0, %d)", m, minutesPerDay)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Minutes returns the offset since midnight in minutes.
// The receiver must be a valid TimeString; invalid values yield -1.
func (t TimeString) Minutes() int {
	if len(t) != 5 || t[2] != ':' {
		return -1
	}
	hours, ok1 := twoDigits(t[0], t[1])
	minutes, ok2 := twoDigits(t[3], t[4])
	if !ok1 || !ok2 || hours > 23 || minutes > 59 {
		return -1
	}
	return hours*60 + minutes
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsValid reports whether the value is a well-formed "HH:MM" time.
func (t TimeString) IsValid() bool {
	return t.Minutes() >= 0
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes returns the time n minutes later, failing if the result leaves the day.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m := t.Minutes()
	if m < 0 {
		return "", fmt.Errorf("invalid time %q", string(t))
	}
	return NewTimeStringFromMinutes(m + n)
}

// String returns the raw "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
