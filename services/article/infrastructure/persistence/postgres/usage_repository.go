package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/medsupply/pkg/database"
	"github.com/ghuser/medsupply/services/article/domain/models"
	"github.com/ghuser/medsupply/services/article/domain/repositories"
	"github.com/ghuser/medsupply/services/article/infrastructure/persistence/postgres/db"
)

// UsageRepository implements repositories.UsageRepository against PostgreSQL.
type UsageRepository struct {
	db *database.Database
}

// NewUsageRepository returns a UsageRepository backed by the given connection pool.
func NewUsageRepository(database *database.Database) *UsageRepository {
	return &UsageRepository{db: database}
}

var _ repositories.UsageRepository = (*UsageRepository)(nil)

// Insert appends a usage event.
func (r *UsageRepository) Insert(ctx context.Context, usage *models.UsageEvent) (*models.UsageEvent, error) {
	used, err := toInt4(usage.Used)
	if err != nil {
		return nil, err
	}

	q := db.New(r.db.DB())
	row, err := q.InsertUsage(ctx, db.InsertUsageParams{
		ArticleID: usage.ArticleID,
		UsageDate: usage.UsageDate,
		Used:      used,
	})
	if err != nil {
		return nil, fmt.Errorf("insert usage: %w", err)
	}
	return &models.UsageEvent{
		ID:        row.ID,
		ArticleID: row.ArticleID,
		UsageDate: models.Date(row.UsageDate),
		Used:      int(row.Used),
	}, nil
}

// SumByArticleAndDateRange returns per-day totals for articleID over [start, end].
func (r *UsageRepository) SumByArticleAndDateRange(ctx context.Context, articleID int64, start, end time.Time) ([]models.DailyUsage, error) {
	q := db.New(r.db.DB())
	rows, err := q.SumUsageByArticleAndDateRange(ctx, db.SumUsageByArticleAndDateRangeParams{
		ArticleID: articleID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("sum usage: %w", err)
	}

	totals := make([]models.DailyUsage, len(rows))
	for i, row := range rows {
		totals[i] = models.DailyUsage{Date: models.Date(row.UsageDate), Total: int(row.Total)}
	}
	return totals, nil
}
