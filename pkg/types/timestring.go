package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidFormat is returned when a string does not match "HH:MM".
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrNegativeMinutes is returned when a minutes-since-midnight value is negative.
	ErrNegativeMinutes = errors.New("minutes since midnight must not be negative")
)

// timePattern accepts wall-clock input: 00:00 .. 23:59.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeString represents a time of day as "HH:MM".
//
// Values produced by arithmetic may carry an hour component of 24 or more
// (e.g. "24:15" for an appointment ending after midnight). Such values are
// valid for comparison and formatting but are rejected as external input.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates external "HH:MM" input.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes converts minutes since midnight to "HH:MM".
// Minutes beyond 23:59 are rendered with an hour component >= 24, they
// never wrap around to the next day.
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeMinutes, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate reports whether the value is well-formed external input (00:00-23:59).
func (t TimeString) Validate() error {
	if !timePattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// MinutesFromMidnight converts the value to minutes since midnight.
// Unlike Validate it also accepts hour components >= 24 produced by AddMinutes.
func (t TimeString) MinutesFromMidnight() (int, error) {
	parts := strings.SplitN(string(t), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || len(parts[0]) != 2 && len(parts[0]) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}

	return hours*60 + minutes, nil
}

// AddMinutes returns the value shifted forward by delta minutes.
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	total, err := t.MinutesFromMidnight()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(total + delta)
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.MinutesFromMidnight()
	if err != nil {
		return false
	}
	b, err := other.MinutesFromMidnight()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}
