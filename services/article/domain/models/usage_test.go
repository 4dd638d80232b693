package models

import (
	"testing"
	"time"
)

func TestDateIn(t *testing.T) {
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 23:30 UTC on Oct 16 is already Oct 17 in Stockholm (UTC+2 in summer time).
	instant := time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)

	got := DateIn(instant, stockholm)
	want := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateIn: got %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", got.Location())
	}

	if utc := DateIn(instant, time.UTC); !utc.Equal(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateIn UTC: got %v", utc)
	}
}

func TestNewUsageEvent(t *testing.T) {
	day := time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)
	u := NewUsageEvent(7, day, 20)

	if u.ID != 0 {
		t.Errorf("expected unsaved event, got ID %d", u.ID)
	}
	if u.ArticleID != 7 || u.Used != 20 {
		t.Errorf("unexpected event: %+v", u)
	}
	if !u.UsageDate.Equal(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("UsageDate not truncated: %v", u.UsageDate)
	}
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2026-10-04")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if FormatDate(d) != "2026-10-04" {
		t.Errorf("FormatDate: got %q", FormatDate(d))
	}

	for _, bad := range []string{"", "04/10/2026", "2026-13-01", "2026-10-04T00:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}
