package handlers

import (
	"net/http"

	"github.com/ghuser/medsupply/pkg/httpx"
	"github.com/ghuser/medsupply/pkg/logger"
	appsvcs "github.com/ghuser/medsupply/services/article/application/services"
)

// GetArticlesHandler handles GET /articles requests.
type GetArticlesHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetArticlesHandler returns a GetArticlesHandler backed by the given services.
func NewGetArticlesHandler(svc *appsvcs.Services, log logger.Logger) *GetArticlesHandler {
	return &GetArticlesHandler{svc: svc, log: log}
}

// Execute lists all articles.
//
//	@Summary		List articles
//	@Description	Returns every article, sorted ascending by the given field. Unknown fields sort by name.
//	@Tags			articles
//	@Produce		json
//	@Param			sort	query		string	false	"Sort field"	Enums(name, count, id, unit)	default(name)
//	@Success		200		{array}		ArticleResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/articles [get]
func (h *GetArticlesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.Article.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toArticleResponses(articles))
}
