package http

import (
	"net/http"

	"github.com/mkravets/job-portal/backend/internal/common/constants"
	"github.com/mkravets/job-portal/backend/internal/common/httpmetrics"
	"github.com/mkravets/job-portal/backend/internal/common/logger"
)

// BuildBaseHandler wraps the application handler with the shared
// request pipeline: recovery, trace id, body size cap, CORS, metrics.
func BuildBaseHandler(appName string, log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New(appName)
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	return recovery(TraceIDMiddleware(maxRequestSize(CORSMiddleware(metrics.Wrap(handler)))))
}
