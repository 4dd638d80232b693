package repositories

import (
	"context"
	"time"

	"github.com/ghuser/medsupply/services/article/domain/models"
)

// SortKey names the column List orders by. Only the constants below are
// valid; use services.NormalizeSortKey to map arbitrary input onto them.
type SortKey string

const (
	SortByName  SortKey = "name"
	SortByCount SortKey = "count"
	SortByID    SortKey = "id"
	SortByUnit  SortKey = "unit"
)

// ArticleRepository is the persistence interface for the Article aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Lookups of missing rows return domain.ErrArticleNotFound.
type ArticleRepository interface {
	// Insert assigns a new unique ID and persists article, returning the stored row.
	Insert(ctx context.Context, article *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)

	// List returns all articles in ascending order of sort. Ties are broken by ID.
	List(ctx context.Context, sort SortKey) ([]*models.Article, error)

	// Update overwrites every column of the stored row with article's fields.
	Update(ctx context.Context, article *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}

// UsageRepository is the persistence interface for usage events.
type UsageRepository interface {
	Insert(ctx context.Context, usage *models.UsageEvent) (*models.UsageEvent, error)

	// SumByArticleAndDateRange sums Used per calendar date for articleID over
	// [start, end] inclusive, ordered by date. Dates without events are omitted.
	SumByArticleAndDateRange(ctx context.Context, articleID int64, start, end time.Time) ([]models.DailyUsage, error)
}
