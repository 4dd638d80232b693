// Package services contains stateless domain services for the article bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ghuser/medsupply/services/article/domain/models"
	"github.com/ghuser/medsupply/services/article/domain/repositories"
)

// ClampCount returns count, or 0 when count is negative.
func ClampCount(count int) int {
	return max(0, count)
}

// ConsumedStock returns how much stock a change from oldCount to newCount
// consumed. Increases and no-ops consume nothing.
func ConsumedStock(oldCount, newCount int) int {
	return max(0, oldCount-newCount)
}

// NormalizeSortKey maps raw (typically a query parameter) onto the sort
// allow-list. Anything unknown, including "", falls back to SortByName.
func NormalizeSortKey(raw string) repositories.SortKey {
	switch k := repositories.SortKey(raw); k {
	case repositories.SortByName, repositories.SortByCount, repositories.SortByID, repositories.SortByUnit:
		return k
	default:
		return repositories.SortByName
	}
}

// ValidateArticleForCreation enforces the registration rules on a
// constructed, unsaved Article: non-blank name and unit, count within
// [0, models.MaxCount].
func ValidateArticleForCreation(article *models.Article) error {
	if article == nil {
		return fmt.Errorf("article cannot be nil")
	}
	if strings.TrimSpace(article.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(article.Unit) == "" {
		return fmt.Errorf("unit is required")
	}
	if article.Count < 0 {
		return fmt.Errorf("count must be 0 or greater")
	}
	if article.Count > models.MaxCount {
		return fmt.Errorf("count must not exceed %d", models.MaxCount)
	}
	if article.ID != 0 {
		return fmt.Errorf("id is assigned by the store")
	}
	return nil
}

// ValidatePatch checks a patch before it is applied. A negative count is
// clamped by the caller, so only the upper bound is checked here.
func ValidatePatch(p models.ArticlePatch) error {
	if c, ok := p.Count.Get(); ok && c > models.MaxCount {
		return fmt.Errorf("count must not exceed %d", models.MaxCount)
	}
	if d, ok := p.Description.Get(); ok && utf8.RuneCountInString(d) > models.MaxDescriptionLength {
		return fmt.Errorf("description must not exceed %d characters", models.MaxDescriptionLength)
	}
	return nil
}
