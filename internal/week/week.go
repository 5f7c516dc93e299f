// Package week implements the Monday-Sunday calendar math the rest of the
// app buckets reviews by. Everything here is pure and side-effect free.
package week

import (
	"fmt"
	"time"
)

// Bounds is one calendar week: Start is Monday at local midnight, End is the
// following Sunday at 23:59:59.999.
type Bounds struct {
	Start time.Time
	End   time.Time
}

// ForDate returns the week containing t. Weeks run Monday to Sunday
// regardless of locale; Sunday counts as day 7 of its week.
func ForDate(t time.Time) Bounds {
	shift := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		shift = 6
	}

	y, m, d := t.AddDate(0, 0, -shift).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())

	last := start.AddDate(0, 0, 6)
	end := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 999_000_000, t.Location())

	return Bounds{Start: start, End: end}
}

// Current returns the week containing the current local time.
func Current() Bounds {
	return ForDate(time.Now())
}

// Offset returns the week n weeks after b (negative n goes back).
func (b Bounds) Offset(n int) Bounds {
	return ForDate(b.Start.AddDate(0, 0, 7*n))
}

// Number returns the ISO-8601 week number for t, in [1,53]. Week 1 is the
// week containing the year's first Thursday, so dates near a year boundary
// may belong to a week of the adjacent ISO year.
func Number(t time.Time) int {
	_, w := t.ISOWeek()
	return w
}

// ISOYear returns the ISO week-numbering year for t. It can differ from
// t.Year() for up to three days at either end of a calendar year.
func ISOYear(t time.Time) int {
	y, _ := t.ISOWeek()
	return y
}

// IsCurrent reports whether start is exactly the current week's start
// instant. This is instant equality, not a date-only comparison.
func IsCurrent(start time.Time) bool {
	return start.Equal(Current().Start)
}

// FormatRange renders a human week label: "Jan 6-12, 2026" when both ends
// share a month, "Dec 30 - Jan 5, 2026" when they don't. The year shown is
// always the end's year.
func FormatRange(start, end time.Time) string {
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d-%d, %d", start.Format("Jan"), start.Day(), end.Day(), end.Year())
	}
	return fmt.Sprintf("%s %d - %s %d, %d", start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day(), end.Year())
}

// YearProgress returns the fraction of t's calendar year that has elapsed,
// in [0,1). Used for the header progress bar.
func YearProgress(t time.Time) float64 {
	startOfYear := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	endOfYear := time.Date(t.Year()+1, 1, 1, 0, 0, 0, 0, t.Location())
	return float64(t.Sub(startOfYear)) / float64(endOfYear.Sub(startOfYear))
}
