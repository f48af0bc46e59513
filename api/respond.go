package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/ttoweb/techportal/internal/apperr"
)

// envelope is the JSON body shape shared by failure responses and the auth
// service's success responses.
type envelope struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeError maps any error onto the envelope, treating non-apperr errors
// as internal failures so nothing leaks beyond a message string.
func writeError(w http.ResponseWriter, err error) {
	aErr, ok := err.(*apperr.Error)
	if !ok {
		aErr = apperr.NewInternal(err)
	}

	writeJSON(w, envelope{Message: aErr.Message, Success: false, Error: aErr.Detail}, aErr.Status)
}
