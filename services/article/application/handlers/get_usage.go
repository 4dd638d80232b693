package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ghuser/medsupply/pkg/httpx"
	"github.com/ghuser/medsupply/pkg/logger"
	appsvcs "github.com/ghuser/medsupply/services/article/application/services"
	articledomain "github.com/ghuser/medsupply/services/article/domain"
	"github.com/ghuser/medsupply/services/article/domain/models"
)

// GetUsageHandler handles GET /usage requests.
type GetUsageHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetUsageHandler returns a GetUsageHandler backed by the given services.
func NewGetUsageHandler(svc *appsvcs.Services, log logger.Logger) *GetUsageHandler {
	return &GetUsageHandler{svc: svc, log: log}
}

// Execute reports daily usage totals for one article.
//
//	@Summary		Daily usage report
//	@Description	Sums recorded usage per day over [start, end]. end defaults to today and start to 13 days before end. Days without usage are omitted.
//	@Tags			usage
//	@Produce		json
//	@Param			articleId	query		int		true	"Article ID"
//	@Param			start		query		string	false	"First day (YYYY-MM-DD)"
//	@Param			end			query		string	false	"Last day (YYYY-MM-DD)"
//	@Success		200			{array}		DailyUsageResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/usage [get]
func (h *GetUsageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	id, err := strconv.ParseInt(q.Get("articleId"), 10, 64)
	if err != nil {
		writeError(w, r, h.log, fmt.Errorf("%w: articleId must be an integer", articledomain.ErrInvalidUsageQuery))
		return
	}
	start, err := dateParam(q, "start")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	end, err := dateParam(q, "end")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	totals, err := h.svc.Usage.DailyTotals(r.Context(), id, start, end)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toDailyUsageResponses(totals))
}

// dateParam parses an optional YYYY-MM-DD query parameter. Absent or empty yields nil.
func dateParam(q url.Values, name string) (*time.Time, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a date (YYYY-MM-DD)", articledomain.ErrInvalidUsageQuery, name)
	}
	return &d, nil
}
