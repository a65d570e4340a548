package utils

import (
	"testing"
	"time"
)

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"pending_verification": "Pending Verification",
		"in_progress":          "In Progress",
		"sos":                  "Sos",
		"":                     "",
	}
	for in, want := range tests {
		if got := Humanize(in); got != want {
			t.Errorf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("Driver was rude", 10); got != "Driver ..." {
		t.Errorf("got %q", got)
	}
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(18.4, "USD"); got != "$18.40" {
		t.Errorf("got %q", got)
	}
	if got := FormatCurrency(41.849, "XXX"); got != "$41.85" {
		t.Errorf("unknown currency: got %q", got)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 9, 11, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{2 * 24 * time.Hour, "2 days ago"},
	}
	for _, tt := range tests {
		if got := TimeAgo(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("TimeAgo(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}
