package models

import "time"

// DateLayout is the calendar-date text format used in query parameters,
// JSON payloads, and DATE columns.
const DateLayout = time.DateOnly

// UsageEvent records stock consumed from one article on one calendar day.
// UsageDate is always midnight UTC of that day (see DateIn).
type UsageEvent struct {
	ID        int64
	ArticleID int64
	UsageDate time.Time
	Used      int
}

// DailyUsage is the sum of Used over all events of one article on one date.
type DailyUsage struct {
	Date  time.Time
	Total int
}

// NewUsageEvent constructs an unsaved UsageEvent for articleID on the calendar
// day of day.
func NewUsageEvent(articleID int64, day time.Time, used int) *UsageEvent {
	return &UsageEvent{
		ArticleID: articleID,
		UsageDate: Date(day),
		Used:      used,
	}
}

// DateIn returns the calendar day that t falls on in loc, as midnight UTC.
// Representing dates in UTC keeps arithmetic free of DST shifts.
func DateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date truncates t to its calendar day (in t's own location) as midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
