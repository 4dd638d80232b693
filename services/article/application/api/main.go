package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/medsupply/pkg/app"
	"github.com/ghuser/medsupply/services/article/application/handlers"
	appsvcs "github.com/ghuser/medsupply/services/article/application/services"
)

// ArticleRoutes registers article and usage endpoints on the provided chi router.
func ArticleRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/articles", func(r chi.Router) {
			r.Get("/", handlers.NewGetArticlesHandler(svcs, a.Logger).Execute)
			r.Post("/", handlers.NewPostArticleHandler(svcs, a.Logger).Execute)
			r.Get("/{id}", handlers.NewGetArticleHandler(svcs, a.Logger).Execute)
			r.Patch("/{id}", handlers.NewPatchArticleHandler(svcs, a.Logger).Execute)
			r.Delete("/{id}", handlers.NewDeleteArticleHandler(svcs, a.Logger).Execute)
		})
		r.Get("/usage", handlers.NewGetUsageHandler(svcs, a.Logger).Execute)
	})
}
