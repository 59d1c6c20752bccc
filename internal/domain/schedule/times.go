package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime reports an unparseable HH:MM string. Callers skip the
// offending row and keep computing; the bad row is an admin data-entry
// problem, not a reason to fail the whole day.
var ErrInvalidTime = errors.New("invalid time format")

const minutesPerDay = 24 * 60

// ToMinutes parses "HH:MM" into minutes since midnight, [0, 1440).
func ToMinutes(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return hour*60 + minute, nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. An interval ending exactly where another
// starts does not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
