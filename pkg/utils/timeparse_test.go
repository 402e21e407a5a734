package util

import (
	"testing"
	"time"
)

func TestParseTimestampLayouts(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	cases := []struct {
		in   string
		loc  *time.Location
		want time.Time
	}{
		{"2026-10-16T09:00:00Z", nil, time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)},
		{"2026-10-16T09:00:00+05:30", nil, time.Date(2026, 10, 16, 3, 30, 0, 0, time.UTC)},
		{"2026-10-16T09:00:00.250Z", nil, time.Date(2026, 10, 16, 9, 0, 0, 250e6, time.UTC)},
		{"2026-10-16T09:00", nil, time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)},
		{"2026-10-16 09:00:30", nil, time.Date(2026, 10, 16, 9, 0, 30, 0, time.UTC)},
		{"2026-10-16T09:00", kolkata, time.Date(2026, 10, 16, 3, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in, tc.loc)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseTimestamp(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "tomorrow", "16/10/2026 09:00", "2026-13-01T00:00"} {
		if _, err := ParseTimestamp(in, nil); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatTimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	got := FormatTimestamp(time.Date(2026, 10, 16, 9, 0, 0, 0, loc))
	if got != "2026-10-16T03:30:00Z" {
		t.Fatalf("unexpected format %q", got)
	}
}

func TestSameOrLaterDate(t *testing.T) {
	from := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)
	if !SameOrLaterDate(time.Date(2026, 10, 16, 7, 0, 0, 0, time.UTC), from, nil) {
		t.Fatalf("same date earlier clock time should count")
	}
	if SameOrLaterDate(time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC), from, nil) {
		t.Fatalf("previous date should not count")
	}
	if !SameOrLaterDate(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), from, nil) {
		t.Fatalf("later year should count")
	}

	// 23:00 UTC on the 15th is already the 16th in a +05:30 zone.
	loc := time.FixedZone("IST", 5*3600+1800)
	if !SameOrLaterDate(time.Date(2026, 10, 15, 23, 0, 0, 0, time.UTC), from, loc) {
		t.Fatalf("date comparison should use the given location")
	}
}
