package util

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for outpass window timestamps. The zone-less ones are what
// an HTML datetime-local input submits.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp parses an ISO-8601 timestamp. Inputs without a zone are read in loc,
// or UTC when loc is nil.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// FormatTimestamp renders t as the canonical ISO-8601 string used at the API boundary.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// SameOrLaterDate reports whether a's calendar date in loc is on or after b's.
func SameOrLaterDate(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad >= bd
}
