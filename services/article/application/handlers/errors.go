package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/medsupply/pkg/errhttp"
	"github.com/ghuser/medsupply/pkg/logger"
	articledomain "github.com/ghuser/medsupply/services/article/domain"
)

// writeError writes err as a JSON error response and logs server-side failures.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if status := errhttp.WriteError(w, r, err); status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
}

// articleID parses the {id} path parameter.
func articleID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", articledomain.ErrInvalidArticle, raw)
	}
	return id, nil
}
