package services

import (
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	now := time.Date(2025, 8, 21, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"yesterday", "i bought shoes yesterday", "2025-08-20"},
		{"today", "paid the bill today", "2025-08-21"},
		{"last week", "went shopping last week", "2025-08-14"},
		{"no keyword", "i bought shoes", "2025-08-21"},
		{"uppercase keyword", "YESTERDAY i flew home", "2025-08-20"},
		// "last month" is detected but has no offset branch yet and
		// falls through to now.
		{"last month gap", "rent from last month", "2025-08-21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDate(tt.text, now); got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveDateCheckedOrder(t *testing.T) {
	now := time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC)
	// "yesterday" is checked before "today" regardless of position in
	// the message.
	got := ResolveDate("today was fine but yesterday i overspent", now)
	if got != "2025-08-20" {
		t.Errorf("ResolveDate = %q, want 2025-08-20 (yesterday wins)", got)
	}
}
