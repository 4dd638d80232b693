package handlers

import (
	"net/http"

	"github.com/ghuser/medsupply/pkg/logger"
	appsvcs "github.com/ghuser/medsupply/services/article/application/services"
)

// DeleteArticleHandler handles DELETE /articles/{id} requests.
type DeleteArticleHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteArticleHandler returns a DeleteArticleHandler backed by the given services.
func NewDeleteArticleHandler(svc *appsvcs.Services, log logger.Logger) *DeleteArticleHandler {
	return &DeleteArticleHandler{svc: svc, log: log}
}

// Execute deletes an article. Its usage history is kept.
//
//	@Summary	Delete article
//	@Tags		articles
//	@Param		id	path	int	true	"Article ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/articles/{id} [delete]
func (h *DeleteArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.Article.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
