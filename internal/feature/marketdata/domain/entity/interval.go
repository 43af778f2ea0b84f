package entity

import "strings"

// Interval identifies the aggregation period of a price bar.
type Interval string

const (
	IntervalDaily   Interval = "1d"
	IntervalWeekly  Interval = "1wk"
	IntervalMonthly Interval = "1mo"
)

// DefaultInterval is used when a request does not specify an interval.
const DefaultInterval = IntervalDaily

// Valid reports whether the interval is one of the supported values.
func (i Interval) Valid() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return true
	}
	return false
}

// String returns the wire form of the interval.
func (i Interval) String() string { return string(i) }

// ParseInterval normalizes a user-supplied interval string. It accepts the
// canonical forms ("1d", "1wk", "1mo") plus common aliases, and reports
// whether the input was recognized.
func ParseInterval(s string) (Interval, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(IntervalDaily), "1day", "d", "day", "daily":
		return IntervalDaily, true
	case string(IntervalWeekly), "1w", "1week", "w", "week", "weekly":
		return IntervalWeekly, true
	case string(IntervalMonthly), "1month", "m", "month", "monthly":
		return IntervalMonthly, true
	}
	return "", false
}
