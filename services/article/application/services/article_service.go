package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/medsupply/pkg/logger"
	articledomain "github.com/ghuser/medsupply/services/article/domain"
	"github.com/ghuser/medsupply/services/article/domain/models"
	"github.com/ghuser/medsupply/services/article/domain/repositories"
	domainsvcs "github.com/ghuser/medsupply/services/article/domain/services"
)

// CreateArticleInput is the registration data for a new article.
// Count is a pointer so a missing count can be told apart from zero.
type CreateArticleInput struct {
	Name  string
	Unit  string
	Count *int
}

// ArticleService orchestrates article CRUD. A patch that lowers the stock
// count also records a UsageEvent for today in the organizational zone.
type ArticleService struct {
	articles repositories.ArticleRepository
	usages   repositories.UsageRepository
	log      logger.Logger
	now      func() time.Time
	loc      *time.Location
	metrics  articleMetrics
}

// NewArticleService returns an ArticleService. now supplies the current
// instant and loc the zone that decides which calendar day it is.
func NewArticleService(
	articles repositories.ArticleRepository,
	usages repositories.UsageRepository,
	log logger.Logger,
	now func() time.Time,
	loc *time.Location,
) *ArticleService {
	return &ArticleService{
		articles: articles,
		usages:   usages,
		log:      log,
		now:      now,
		loc:      loc,
		metrics:  newArticleMetrics(),
	}
}

// Create validates and persists a new Article.
// Returns ErrInvalidArticle when name or unit is blank, or count is missing or negative.
func (s *ArticleService) Create(ctx context.Context, in CreateArticleInput) (*models.Article, error) {
	if in.Count == nil {
		return nil, fmt.Errorf("%w: count is required", articledomain.ErrInvalidArticle)
	}

	article := models.NewArticle(in.Name, in.Unit, *in.Count)
	if err := domainsvcs.ValidateArticleForCreation(article); err != nil {
		return nil, fmt.Errorf("%w: %w", articledomain.ErrInvalidArticle, err)
	}

	saved, err := s.articles.Insert(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}

	s.metrics.articlesCreated.Add(ctx, 1)
	s.log.InfoContext(ctx, "article created", "article_id", saved.ID, "count", saved.Count)
	return saved, nil
}

// GetByID returns the article with the given id, or ErrArticleNotFound.
func (s *ArticleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// List returns all articles ordered by sort. Unknown sort keys order by name.
func (s *ArticleService) List(ctx context.Context, sort string) ([]*models.Article, error) {
	articles, err := s.articles.List(ctx, domainsvcs.NormalizeSortKey(sort))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Patch applies the fields present in patch to article id.
//
// When patch carries a count, a negative value is clamped to 0 and any
// decrease is recorded as a UsageEvent after the article is saved. The two
// writes are not atomic: if the usage write fails the article keeps its new
// count, the failure is logged, and the error is returned.
func (s *ArticleService) Patch(ctx context.Context, id int64, patch models.ArticlePatch) (*models.Article, error) {
	if err := domainsvcs.ValidatePatch(patch); err != nil {
		return nil, fmt.Errorf("%w: %w", articledomain.ErrInvalidArticle, err)
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	oldCount := article.Count
	article.ApplyPatch(patch)

	used := 0
	if patch.Count.Set {
		article.Count = domainsvcs.ClampCount(article.Count)
		used = domainsvcs.ConsumedStock(oldCount, article.Count)
	}

	updated, err := s.articles.Update(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	if used > 0 {
		if err := s.recordUsage(ctx, updated.ID, used); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// Delete removes article id. Its usage history is kept.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	s.log.InfoContext(ctx, "article deleted", "article_id", id)
	return nil
}

func (s *ArticleService) recordUsage(ctx context.Context, articleID int64, used int) error {
	today := models.DateIn(s.now(), s.loc)
	if _, err := s.usages.Insert(ctx, models.NewUsageEvent(articleID, today, used)); err != nil {
		s.log.ErrorContext(ctx, "usage event not recorded after count update",
			"article_id", articleID,
			"used", used,
			"usage_date", models.FormatDate(today),
			"error", err,
		)
		return fmt.Errorf("record usage: %w", err)
	}

	s.metrics.usageRecorded.Add(ctx, int64(used))
	s.log.InfoContext(ctx, "usage recorded",
		"article_id", articleID,
		"used", used,
		"usage_date", models.FormatDate(today),
	)
	return nil
}
