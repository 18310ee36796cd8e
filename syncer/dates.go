package syncer

import (
	"fmt"
	"strings"
	"time"
)

// dateParser is one strategy for reading a date display string. The
// strategies run in a fixed order; the first success wins.
type dateParser func(string) (time.Time, bool)

var dateParsers = []dateParser{
	parseFullTimestamp,
	parseDatePrefix,
}

// NormalizeDate reduces a possibly ranged date display string
// ("start -> end") to the start date formatted as M/D/YYYY with no zero
// padding. Unparseable input comes back verbatim; this never fails.
func NormalizeDate(value string) string {
	if value == "" {
		return ""
	}
	start, _, _ := strings.Cut(value, "->")
	start = strings.TrimSpace(start)
	if start == "" {
		return ""
	}

	for _, parse := range dateParsers {
		if t, ok := parse(start); ok {
			return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
		}
	}
	return start
}

// parseFullTimestamp reads a full ISO-8601 timestamp, trailing Z
// meaning UTC. The date components are taken in the timestamp's own
// offset, not converted.
func parseFullTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseDatePrefix reads the first 10 characters as YYYY-MM-DD.
func parseDatePrefix(s string) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
