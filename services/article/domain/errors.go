package domain

import "errors"

// Sentinel errors for the article domain. Use errors.Is() to check these.
var (
	// ErrArticleNotFound indicates the requested article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticle indicates an article create or patch request violates domain constraints.
	ErrInvalidArticle = errors.New("invalid article")

	// ErrInvalidDateRange indicates a usage report whose end date precedes its start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidUsageQuery indicates malformed usage report parameters (article id or dates).
	ErrInvalidUsageQuery = errors.New("invalid usage query")
)
