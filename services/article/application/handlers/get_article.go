package handlers

import (
	"net/http"

	"github.com/ghuser/medsupply/pkg/httpx"
	"github.com/ghuser/medsupply/pkg/logger"
	appsvcs "github.com/ghuser/medsupply/services/article/application/services"
)

// GetArticleHandler handles GET /articles/{id} requests.
type GetArticleHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetArticleHandler returns a GetArticleHandler backed by the given services.
func NewGetArticleHandler(svc *appsvcs.Services, log logger.Logger) *GetArticleHandler {
	return &GetArticleHandler{svc: svc, log: log}
}

// Execute returns one article.
//
//	@Summary	Get article
//	@Tags		articles
//	@Produce	json
//	@Param		id	path		int	true	"Article ID"
//	@Success	200	{object}	ArticleResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/articles/{id} [get]
func (h *GetArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	article, err := h.svc.Article.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toArticleResponse(article))
}
