package media

import "testing"

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{1, "00:01"},
		{59.9, "00:59"},
		{61, "01:01"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
		{-3, "00:00"},
	}
	for _, tc := range cases {
		if got := FormatTimestamp(tc.seconds); got != tc.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestSegmentLine(t *testing.T) {
	seg := Segment{Start: 0, End: 1, Text: "hi"}
	if got := seg.Line(); got != "[00:00 - 00:01] hi" {
		t.Errorf("Line() = %q", got)
	}

	long := Segment{Start: 3600, End: 3665, Text: "later"}
	if got := long.Line(); got != "[01:00:00 - 01:01:05] later" {
		t.Errorf("Line() = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "Unknown"},
		{42, "42s"},
		{90, "1m 30s"},
		{3725, "1h 2m 5s"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
