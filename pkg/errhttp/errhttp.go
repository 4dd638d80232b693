// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/medsupply/pkg/httpx"
	articledomain "github.com/ghuser/medsupply/services/article/domain"
)

// WriteError maps err to an HTTP status code, writes a JSON error response
// and returns the status it wrote.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500: the body carries only the status text and
// err is reported to the Sentry hub bound to the request, if any.
func WriteError(w http.ResponseWriter, r *http.Request, err error) int {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
	}
	httpx.JSONError(w, status, httpx.SafeError(err, status))
	return status
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, articledomain.ErrArticleNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, articledomain.ErrInvalidArticle),
		errors.Is(err, articledomain.ErrInvalidDateRange),
		errors.Is(err, articledomain.ErrInvalidUsageQuery):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
