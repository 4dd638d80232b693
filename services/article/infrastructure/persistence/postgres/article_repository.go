package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/medsupply/pkg/database"
	articledomain "github.com/ghuser/medsupply/services/article/domain"
	"github.com/ghuser/medsupply/services/article/domain/models"
	"github.com/ghuser/medsupply/services/article/domain/repositories"
	"github.com/ghuser/medsupply/services/article/infrastructure/persistence/postgres/db"
)

// PostgreSQL error codes mapped onto domain errors.
const (
	pgCheckViolation   = "23514"
	pgNotNullViolation = "23502"
	pgStringTooLong    = "22001"
)

// ArticleRepository implements repositories.ArticleRepository against PostgreSQL.
type ArticleRepository struct {
	db *database.Database
}

// NewArticleRepository returns an ArticleRepository backed by the given connection pool.
func NewArticleRepository(database *database.Database) *ArticleRepository {
	return &ArticleRepository{db: database}
}

var _ repositories.ArticleRepository = (*ArticleRepository)(nil)

// Insert persists a new Article. The id is assigned by the article.articles sequence.
func (r *ArticleRepository) Insert(ctx context.Context, article *models.Article) (*models.Article, error) {
	count, err := toInt4(article.Count)
	if err != nil {
		return nil, err
	}

	q := db.New(r.db.DB())
	row, err := q.InsertArticle(ctx, db.InsertArticleParams{
		Name:        article.Name,
		Unit:        article.Unit,
		Count:       count,
		Icon:        toNullString(article.Icon),
		Description: toNullString(article.Description),
		Supplier:    toNullString(article.Supplier),
		Price:       toNullString(article.Price),
		Category:    toNullString(article.Category),
	})
	if err != nil {
		return nil, mapWriteError("insert article", err)
	}
	return rowToArticle(row), nil
}

// GetByID retrieves an Article by ID. Returns ErrArticleNotFound if not found.
func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	q := db.New(r.db.DB())
	row, err := q.GetArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, articledomain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("query article: %w", err)
	}
	return rowToArticle(row), nil
}

// List returns every article ordered by sort, then id.
func (r *ArticleRepository) List(ctx context.Context, sort repositories.SortKey) ([]*models.Article, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListArticles(ctx, string(sort))
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}

	articles := make([]*models.Article, len(rows))
	for i, row := range rows {
		articles[i] = rowToArticle(row)
	}
	return articles, nil
}

// Update overwrites the stored row. Returns ErrArticleNotFound if the row is gone.
func (r *ArticleRepository) Update(ctx context.Context, article *models.Article) (*models.Article, error) {
	count, err := toInt4(article.Count)
	if err != nil {
		return nil, err
	}

	q := db.New(r.db.DB())
	row, err := q.UpdateArticle(ctx, db.UpdateArticleParams{
		ID:          article.ID,
		Name:        article.Name,
		Unit:        article.Unit,
		Count:       count,
		Icon:        toNullString(article.Icon),
		Description: toNullString(article.Description),
		Supplier:    toNullString(article.Supplier),
		Price:       toNullString(article.Price),
		Category:    toNullString(article.Category),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, articledomain.ErrArticleNotFound
		}
		return nil, mapWriteError("update article", err)
	}
	return rowToArticle(row), nil
}

// Delete removes an article by ID. Returns ErrArticleNotFound when nothing was deleted.
func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	q := db.New(r.db.DB())
	n, err := q.DeleteArticle(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if n == 0 {
		return articledomain.ErrArticleNotFound
	}
	return nil
}

// mapWriteError turns constraint violations into ErrInvalidArticle so they
// surface as client errors; anything else is wrapped with op.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation, pgNotNullViolation, pgStringTooLong:
			return fmt.Errorf("%w: %s", articledomain.ErrInvalidArticle, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// toInt4 narrows a count to the INTEGER column type, rejecting values that
// would wrap.
func toInt4(v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d is out of range for an integer column", articledomain.ErrInvalidArticle, v)
	}
	return int32(v), nil
}

// rowToArticle maps a db.ArticleArticle to a domain models.Article.
func rowToArticle(row db.ArticleArticle) *models.Article {
	return &models.Article{
		ID:          row.ID,
		Name:        row.Name,
		Unit:        row.Unit,
		Count:       int(row.Count),
		Icon:        fromNullString(row.Icon),
		Description: fromNullString(row.Description),
		Supplier:    fromNullString(row.Supplier),
		Price:       fromNullString(row.Price),
		Category:    fromNullString(row.Category),
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
