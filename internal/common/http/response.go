package http

import (
	"encoding/json"
	"net/http"

	commonerrors "github.com/mkravets/job-portal/backend/internal/common/errors"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteDomainError maps a service error to its HTTP status; anything
// that is not a DomainError becomes a 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	if de, ok := commonerrors.AsDomainError(err); ok {
		WriteError(w, de.HTTPStatus(), de.Message())
		return
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}

func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
