package services

import (
	"time"

	"github.com/ghuser/medsupply/pkg/app"
	"github.com/ghuser/medsupply/services/article/domain/repositories"
	"github.com/ghuser/medsupply/services/article/infrastructure/persistence/memory"
	"github.com/ghuser/medsupply/services/article/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Article *ArticleService
	Usage   *UsageService
}

// New wires all article application services with infrastructure from the
// Application container. PostgreSQL is used when a.Db is set; otherwise the
// in-memory repositories.
func New(a *app.Application) *Services {
	var (
		articles repositories.ArticleRepository
		usages   repositories.UsageRepository
	)
	if a.Db != nil {
		articles = postgres.NewArticleRepository(a.Db)
		usages = postgres.NewUsageRepository(a.Db)
	} else {
		articles = memory.NewArticleRepository()
		usages = memory.NewUsageRepository()
	}

	loc := a.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Services{
		Article: NewArticleService(articles, usages, a.Logger, a.Now, loc),
		Usage:   NewUsageService(usages, a.Now, loc),
	}
}
