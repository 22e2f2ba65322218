package http

import (
	"net/http"

	"github.com/mkravets/job-portal/backend/internal/common/logger"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func HealthHandler(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		log.Debug("health check request")
		WriteJSON(w, http.StatusOK, healthResponse{
			Status:  "OK",
			Message: "Job Portal API is running",
		})
	}
}
