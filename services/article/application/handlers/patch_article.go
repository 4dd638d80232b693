package handlers

import (
	"net/http"

	"github.com/ghuser/medsupply/pkg/httpx"
	"github.com/ghuser/medsupply/pkg/logger"
	pkgvalidator "github.com/ghuser/medsupply/pkg/validator"
	appsvcs "github.com/ghuser/medsupply/services/article/application/services"
)

// PatchArticleHandler handles PATCH /articles/{id} requests.
type PatchArticleHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPatchArticleHandler returns a PatchArticleHandler backed by the given services.
func NewPatchArticleHandler(svc *appsvcs.Services, log logger.Logger) *PatchArticleHandler {
	return &PatchArticleHandler{svc: svc, log: log}
}

// Execute partially updates an article. Lowering count records a usage event for today.
//
//	@Summary		Update article
//	@Description	Overwrites only the fields present in the body. A lower count records the difference as today's usage.
//	@Tags			articles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Article ID"
//	@Param			request	body		PatchArticleRequest	true	"Fields to change"
//	@Success		200		{object}	ArticleResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/articles/{id} [patch]
func (h *PatchArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PatchArticleRequest](w, r)
	if !ok {
		return
	}

	article, err := h.svc.Article.Patch(r.Context(), id, req.toPatch())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toArticleResponse(article))
}
