package clock

import (
	"testing"
	"time"
)

func fixed(t *testing.T, instant time.Time) *Clock {
	t.Helper()
	c, err := NewAt("Europe/Kyiv", func() time.Time { return instant })
	if err != nil {
		t.Fatalf("new clock: %v", err)
	}
	return c
}

func TestStampNormalizesToTargetZone(t *testing.T) {
	// 2025-01-15 22:30:00 UTC is 00:30:00 on the 16th in Kyiv (UTC+2 winter).
	c := fixed(t, time.Date(2025, 1, 15, 22, 30, 0, 0, time.UTC))

	date, clock := c.Stamp()
	if date != "2025-01-16" {
		t.Fatalf("expected date 2025-01-16, got %s", date)
	}
	if clock != "00:30:00" {
		t.Fatalf("expected clock 00:30:00, got %s", clock)
	}
}

func TestStampAcrossDSTBoundary(t *testing.T) {
	// Kyiv switches EET (UTC+2) to EEST (UTC+3) on 2025-03-30 at 03:00 local.
	cases := []struct {
		instant   time.Time
		wantDate  string
		wantClock string
	}{
		{time.Date(2025, 3, 30, 0, 30, 0, 0, time.UTC), "2025-03-30", "02:30:00"},
		{time.Date(2025, 3, 30, 1, 30, 0, 0, time.UTC), "2025-03-30", "04:30:00"},
	}
	for _, tc := range cases {
		c := fixed(t, tc.instant)
		date, clock := c.Stamp()
		if date != tc.wantDate || clock != tc.wantClock {
			t.Fatalf("at %v: expected %s %s, got %s %s",
				tc.instant, tc.wantDate, tc.wantClock, date, clock)
		}
	}
}

func TestStampZeroPadded(t *testing.T) {
	c := fixed(t, time.Date(2025, 6, 1, 4, 5, 6, 0, time.UTC))

	date, clock := c.Stamp()
	if date != "2025-06-01" {
		t.Fatalf("expected zero-padded date, got %s", date)
	}
	// 04:05:06 UTC is 07:05:06 EEST.
	if clock != "07:05:06" {
		t.Fatalf("expected 07:05:06, got %s", clock)
	}
}

func TestNewRejectsUnknownZone(t *testing.T) {
	if _, err := New("Nowhere/Atlantis"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}
