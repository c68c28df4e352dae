package video

import "testing"

func TestParseISODuration(t *testing.T) {
	testCases := []struct {
		in   string
		want int
	}{
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT4M13S", 253},
		{"PT2H", 7200},
		{"PT10M", 600},
		{"PT1H5S", 3605},
		{"PT0S", 0},
		{"P0D", 0},
		{"", 0},
		{"bogus", 0},
	}

	for _, tc := range testCases {
		if got := ParseISODuration(tc.in); got != tc.want {
			t.Errorf("ParseISODuration(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		in   int
		want string
	}{
		{3723, "1:02:03"},
		{45, "0:45"},
		{253, "4:13"},
		{0, "0:00"},
		{3600, "1:00:00"},
		{600, "10:00"},
		{36005, "10:00:05"},
	}

	for _, tc := range testCases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	if got := FormatDuration(ParseISODuration("PT1H2M3S")); got != "1:02:03" {
		t.Errorf("round trip PT1H2M3S = %q, want 1:02:03", got)
	}

	if got := FormatDuration(ParseISODuration("PT45S")); got != "0:45" {
		t.Errorf("round trip PT45S = %q, want 0:45", got)
	}
}
