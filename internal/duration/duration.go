// Package duration parses the short duration strings accepted by --since.
//
// Users write "7d" (days), "4w" (weeks) or "3m" (months) rather than Go's
// time.Duration syntax, which has no unit larger than hours.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var pattern = regexp.MustCompile(`^(\d+)([dwm])$`)

// Day is the length of one "d" unit.
const Day = 24 * time.Hour

// Parse parses duration strings in the format: Nd (days), Nw (weeks), Nm (months).
// Examples: "7d" = 7 days, "4w" = 4 weeks, "3m" = 3 months (30 days).
func Parse(s string) (time.Duration, error) {
	matches := pattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration format: %s (use 7d, 4w, or 3m)", s)
	}

	num, err := strconv.Atoi(matches[1])
	if err != nil {
		// Regex ensures digits only, but the value can still overflow int.
		return 0, fmt.Errorf("invalid number: %w", err)
	}

	switch matches[2] {
	case "d":
		return time.Duration(num) * Day, nil
	case "w":
		return time.Duration(num) * 7 * Day, nil
	default:
		return time.Duration(num) * 30 * Day, nil
	}
}

// Since returns the instant d before now, parsed from s.
func Since(s string, now time.Time) (time.Time, error) {
	d, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}
