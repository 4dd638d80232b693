package services

import (
	"time"

	articledomain "github.com/ghuser/medsupply/services/article/domain"
)

// DefaultReportDays is the length of the default usage report window,
// counting both ends.
const DefaultReportDays = 14

// DateRange is an inclusive span of calendar dates (midnight UTC values).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ResolveDateRange fills in a usage report window. A nil end means today;
// a nil start means DefaultReportDays-1 days before end. Returns
// ErrInvalidDateRange when end precedes start.
func ResolveDateRange(today time.Time, start, end *time.Time) (DateRange, error) {
	r := DateRange{End: today}
	if end != nil {
		r.End = *end
	}
	r.Start = r.End.AddDate(0, 0, -(DefaultReportDays - 1))
	if start != nil {
		r.Start = *start
	}
	if r.End.Before(r.Start) {
		return DateRange{}, articledomain.ErrInvalidDateRange
	}
	return r, nil
}
