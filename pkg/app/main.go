package app

import (
	"time"

	"github.com/ghuser/medsupply/pkg/database"
	"github.com/ghuser/medsupply/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "article created", "article_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	// Db is nil when STORAGE_BACKEND=memory; services then fall back to
	// process-local repositories.
	Db     *database.Database
	Logger logger.Logger

	// Location is the organizational time zone that decides the calendar day.
	Location *time.Location
	// Clock returns the current instant. Defaults to time.Now when nil.
	Clock func() time.Time
}

// Now returns the current instant from Clock, or time.Now when unset.
func (a *Application) Now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}
