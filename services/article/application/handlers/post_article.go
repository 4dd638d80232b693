package handlers

import (
	"net/http"
	"path"
	"strconv"

	"github.com/ghuser/medsupply/pkg/httpx"
	"github.com/ghuser/medsupply/pkg/logger"
	pkgvalidator "github.com/ghuser/medsupply/pkg/validator"
	appsvcs "github.com/ghuser/medsupply/services/article/application/services"
)

// PostArticleHandler handles POST /articles requests.
type PostArticleHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostArticleHandler returns a PostArticleHandler backed by the given services.
func NewPostArticleHandler(svc *appsvcs.Services, log logger.Logger) *PostArticleHandler {
	return &PostArticleHandler{svc: svc, log: log}
}

// Execute registers a new article.
//
//	@Summary		Create article
//	@Description	Registers a new article. The Location header points at the created resource.
//	@Tags			articles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateArticleRequest	true	"Article registration"
//	@Success		201		{object}	ArticleResponse
//	@Header			201		{string}	Location	"/api/v1/articles/{id}"
//	@Failure		400		{object}	ValidationErrorResponse
//	@Router			/articles [post]
func (h *PostArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateArticleRequest](w, r)
	if !ok {
		return
	}

	article, err := h.svc.Article.Create(r.Context(), appsvcs.CreateArticleInput{
		Name:  req.Name,
		Unit:  req.Unit,
		Count: req.Count,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", path.Join(r.URL.Path, strconv.FormatInt(article.ID, 10)))
	httpx.JSON(w, http.StatusCreated, toArticleResponse(article))
}
