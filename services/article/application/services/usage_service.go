package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/medsupply/services/article/domain/models"
	"github.com/ghuser/medsupply/services/article/domain/repositories"
	domainsvcs "github.com/ghuser/medsupply/services/article/domain/services"
)

// UsageService answers per-day consumption reports for one article.
type UsageService struct {
	usages repositories.UsageRepository
	now    func() time.Time
	loc    *time.Location
}

// NewUsageService returns a UsageService reading from usages.
func NewUsageService(usages repositories.UsageRepository, now func() time.Time, loc *time.Location) *UsageService {
	return &UsageService{usages: usages, now: now, loc: loc}
}

// DailyTotals returns the summed usage per date for articleID over
// [start, end]. A nil end means today and a nil start means 13 days before
// end. Dates without usage are omitted; an unknown article yields an empty
// slice. Returns ErrInvalidDateRange when end precedes start.
func (s *UsageService) DailyTotals(ctx context.Context, articleID int64, start, end *time.Time) ([]models.DailyUsage, error) {
	today := models.DateIn(s.now(), s.loc)
	r, err := domainsvcs.ResolveDateRange(today, datePtr(start), datePtr(end))
	if err != nil {
		return nil, err
	}

	totals, err := s.usages.SumByArticleAndDateRange(ctx, articleID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("sum usage: %w", err)
	}
	if totals == nil {
		totals = []models.DailyUsage{}
	}
	return totals, nil
}

func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := models.Date(*t)
	return &d
}
