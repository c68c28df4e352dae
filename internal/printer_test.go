package internal

import "testing"

func TestPrettyViewCount(t *testing.T) {
	t.Setenv("LC_ALL", "en_US")

	if got := PrettyViewCount(1234567); got != "1,234,567" {
		t.Errorf("PrettyViewCount(1234567) = %q, want 1,234,567", got)
	}

	if got := PrettyViewCount(42); got != "42" {
		t.Errorf("PrettyViewCount(42) = %q, want 42", got)
	}
}

func TestPrettyViewCountBadLocale(t *testing.T) {
	t.Setenv("LC_ALL", "definitely-not-a-locale")

	// Falls back to English grouping instead of failing.
	if got := PrettyViewCount(1000); got != "1,000" {
		t.Errorf("PrettyViewCount(1000) = %q, want 1,000", got)
	}
}
