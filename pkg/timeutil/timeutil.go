// Package timeutil provides the timestamp helpers shared by the store and
// the dashboard-facing layers: UTC instants in ISO-8601 form, record
// stamping, and coarse human-readable formatting.
package timeutil

import (
	"fmt"
	"time"

	"backcore/pkg/domain"
)

// Fixed bucketing thresholds used by Relative. The month and year buckets are
// approximations, not calendar arithmetic.
const (
	minuteThreshold = time.Minute
	hourThreshold   = time.Hour
	dayThreshold    = 24 * time.Hour
	weekThreshold   = 7 * dayThreshold
	monthThreshold  = 4 * weekThreshold
	yearThreshold   = 12 * monthThreshold
)

// Now returns the current instant in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// Timestamp returns the current instant formatted as ISO-8601.
func Timestamp() string {
	return Now().Format(time.RFC3339)
}

// Touch stamps a record base for a create or an update at the given instant.
// Creates set both timestamps; updates refresh only UpdatedAt and preserve
// CreatedAt.
func Touch(base domain.Base, isUpdate bool, now time.Time) domain.Base {
	now = now.UTC()
	if !isUpdate {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
	return base
}

// Relative renders how long before now t occurred, in the coarsest applicable
// bucket. Future instants and instants under a minute old collapse to "just
// now".
func Relative(t, now time.Time) string {
	d := now.Sub(t)
	if d < minuteThreshold {
		return "just now"
	}
	switch {
	case d < hourThreshold:
		return plural(int(d/minuteThreshold), "minute") + " ago"
	case d < dayThreshold:
		return plural(int(d/hourThreshold), "hour") + " ago"
	case d < weekThreshold:
		return plural(int(d/dayThreshold), "day") + " ago"
	case d < monthThreshold:
		return plural(int(d/weekThreshold), "week") + " ago"
	case d < yearThreshold:
		return plural(int(d/monthThreshold), "month") + " ago"
	default:
		return plural(int(d/yearThreshold), "year") + " ago"
	}
}

// IsRecent reports whether t falls within the 24 hours before now.
func IsRecent(t, now time.Time) bool {
	d := now.Sub(t)
	return d >= 0 && d < dayThreshold
}

// FormatDuration renders the span between start and end in its coarsest
// applicable unit, floor-divided. Negative spans render as "0 seconds".
func FormatDuration(start, end time.Time) string {
	d := end.Sub(start)
	if d < 0 {
		d = 0
	}
	switch {
	case d < minuteThreshold:
		return plural(int(d/time.Second), "second")
	case d < hourThreshold:
		return plural(int(d/minuteThreshold), "minute")
	case d < dayThreshold:
		return plural(int(d/hourThreshold), "hour")
	default:
		return plural(int(d/dayThreshold), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
