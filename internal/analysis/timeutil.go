package analysis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of a calendar day in minutes.
const MinutesPerDay = 24 * 60

// ErrInvalidTime is returned when a time-of-day string is not a valid "HH:MM".
var ErrInvalidTime = errors.New("invalid time, expected HH:MM")

// TimeToMinutes parses "HH:MM" into minutes since midnight, in [0, 1440).
// Out-of-range hours or minutes are rejected rather than clamped.
func TimeToMinutes(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || hh == "" || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return h*60 + m, nil
}

// SleepDurationMinutes returns the minutes slept between bedtime and wake time.
// A wake time at or before bedtime is treated as the next calendar day.
func SleepDurationMinutes(bedtime, wakeTime string) (int, error) {
	bed, err := TimeToMinutes(bedtime)
	if err != nil {
		return 0, err
	}
	wake, err := TimeToMinutes(wakeTime)
	if err != nil {
		return 0, err
	}
	if wake <= bed {
		wake += MinutesPerDay
	}
	return wake - bed, nil
}

// ElapsedMinutes returns the span between start and end. Unlike sleep, an end
// equal to start is a zero-length span; only an earlier end wraps past midnight.
func ElapsedMinutes(start, end string) (int, error) {
	s, err := TimeToMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := TimeToMinutes(end)
	if err != nil {
		return 0, err
	}
	if e < s {
		e += MinutesPerDay
	}
	return e - s, nil
}

// FormatDuration renders minutes as "7h 30m", or "8h" when the minutes are zero.
func FormatDuration(totalMins int) string {
	h, m := totalMins/60, totalMins%60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

// FormatWorkoutDuration renders minutes as "1h 5m" or, under an hour, "45m".
func FormatWorkoutDuration(totalMins int) string {
	h, m := totalMins/60, totalMins%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
