package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"zikirmatik/internal/constants"
)

var timeInputRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Today returns the given instant's local date string (YYYY-MM-DD).
// Streak decisions compare these strings, never elapsed milliseconds,
// so DST shifts and near-midnight completions classify correctly.
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD string into a local midnight time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// IsYesterday reports whether prev is exactly one calendar day before next.
// Both arguments are YYYY-MM-DD strings.
func IsYesterday(prev, next string) bool {
	if prev == "" || next == "" {
		return false
	}
	p, err := ParseDate(prev)
	if err != nil {
		return false
	}
	n, err := ParseDate(next)
	if err != nil {
		return false
	}
	return p.AddDate(0, 0, 1).Format(constants.DateFormat) == n.Format(constants.DateFormat)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeInput validates and canonicalizes a user-entered clock time.
// "8:05" becomes "08:05"; out-of-range values are rejected.
func ValidateTimeInput(value string) (string, error) {
	m := timeInputRe.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return "", fmt.Errorf("invalid time format (expected HH:MM): %q", value)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("time out of range: %q", value)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// HourMinute splits a canonical HH:MM string into its components.
func HourMinute(timeStr string) (int, int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// NextOccurrence returns the next instant the given HH:MM clock time
// occurs: today if it has not passed yet, otherwise tomorrow.
func NextOccurrence(timeStr string, now time.Time) (time.Time, error) {
	hour, minute, err := HourMinute(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target, nil
}

// OffsetDuration converts a relative reminder's value and unit to a duration.
func OffsetDuration(value int, unit constants.OffsetUnit) time.Duration {
	switch unit {
	case constants.OffsetDay:
		return time.Duration(value) * 24 * time.Hour
	default:
		return time.Duration(value) * time.Hour
	}
}

// ValidateOffset checks a relative reminder's delay against the allowed range.
func ValidateOffset(value int, unit constants.OffsetUnit) error {
	max := constants.MaxOffsetHours
	if unit == constants.OffsetDay {
		max = constants.MaxOffsetDays
	}
	if value < constants.MinOffsetValue || value > max {
		return fmt.Errorf("offset must be between %d and %d %ss", constants.MinOffsetValue, max, unit)
	}
	return nil
}
