package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	articledomain "github.com/ghuser/medsupply/services/article/domain"
	"github.com/ghuser/medsupply/services/article/domain/models"
	"github.com/ghuser/medsupply/services/article/domain/repositories"
)

// UsageRepository is an append-only, mutex-guarded slice of usage events.
type UsageRepository struct {
	mu     sync.RWMutex
	nextID int64
	events []models.UsageEvent
}

// NewUsageRepository returns an empty UsageRepository.
func NewUsageRepository() *UsageRepository {
	return &UsageRepository{}
}

var _ repositories.UsageRepository = (*UsageRepository)(nil)

func (r *UsageRepository) Insert(_ context.Context, usage *models.UsageEvent) (*models.UsageEvent, error) {
	if usage.Used <= 0 || usage.Used > models.MaxCount {
		return nil, fmt.Errorf("%w: used must be between 1 and %d", articledomain.ErrInvalidArticle, models.MaxCount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *usage
	stored.ID = r.nextID
	stored.UsageDate = models.Date(usage.UsageDate)
	r.events = append(r.events, stored)

	out := stored
	return &out, nil
}

func (r *UsageRepository) SumByArticleAndDateRange(_ context.Context, articleID int64, start, end time.Time) ([]models.DailyUsage, error) {
	start, end = models.Date(start), models.Date(end)

	r.mu.RLock()
	byDate := make(map[time.Time]int)
	for _, e := range r.events {
		if e.ArticleID != articleID || e.UsageDate.Before(start) || e.UsageDate.After(end) {
			continue
		}
		byDate[e.UsageDate] += e.Used
	}
	r.mu.RUnlock()

	totals := make([]models.DailyUsage, 0, len(byDate))
	for d, total := range byDate {
		totals = append(totals, models.DailyUsage{Date: d, Total: total})
	}
	slices.SortFunc(totals, func(a, b models.DailyUsage) int {
		return a.Date.Compare(b.Date)
	})
	return totals, nil
}

// Events returns a copy of every stored event in insertion order.
func (r *UsageRepository) Events() []models.UsageEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.events)
}
