// Package memory provides process-local implementations of the article
// repositories. They back STORAGE_BACKEND=memory and the service and handler
// tests; all data is lost when the process exits.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	articledomain "github.com/ghuser/medsupply/services/article/domain"
	"github.com/ghuser/medsupply/services/article/domain/models"
	"github.com/ghuser/medsupply/services/article/domain/repositories"
)

// ArticleRepository is a mutex-guarded map of articles keyed by id.
// Stored values are cloned on the way in and out so callers never share them.
type ArticleRepository struct {
	mu       sync.RWMutex
	nextID   int64
	articles map[int64]*models.Article
}

// NewArticleRepository returns an empty ArticleRepository. Ids start at 1.
func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{articles: make(map[int64]*models.Article)}
}

var _ repositories.ArticleRepository = (*ArticleRepository)(nil)

func (r *ArticleRepository) Insert(_ context.Context, article *models.Article) (*models.Article, error) {
	if article.Count < 0 || article.Count > models.MaxCount {
		return nil, articledomain.ErrInvalidArticle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := article.Clone()
	stored.ID = r.nextID
	r.articles[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *ArticleRepository) GetByID(_ context.Context, id int64) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, articledomain.ErrArticleNotFound
	}
	return a.Clone(), nil
}

// List orders name and unit by byte value, so uppercase sorts before
// lowercase; PostgreSQL uses the database collation instead.
func (r *ArticleRepository) List(_ context.Context, sort repositories.SortKey) ([]*models.Article, error) {
	r.mu.RLock()
	list := make([]*models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		list = append(list, a.Clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b *models.Article) int {
		var c int
		switch sort {
		case repositories.SortByCount:
			c = cmp.Compare(a.Count, b.Count)
		case repositories.SortByUnit:
			c = cmp.Compare(a.Unit, b.Unit)
		case repositories.SortByName:
			c = cmp.Compare(a.Name, b.Name)
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return list, nil
}

func (r *ArticleRepository) Update(_ context.Context, article *models.Article) (*models.Article, error) {
	if article.Count < 0 || article.Count > models.MaxCount {
		return nil, articledomain.ErrInvalidArticle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[article.ID]; !ok {
		return nil, articledomain.ErrArticleNotFound
	}
	stored := article.Clone()
	r.articles[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *ArticleRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return articledomain.ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}
