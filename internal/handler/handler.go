package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"velour/internal/model"

	"github.com/rs/zerolog"
)

// defaultSession identifies callers that do not send a session header.
const defaultSession = "anonymous"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// sessionFrom extracts the caller's session id from the X-Session-ID
// header.
func sessionFrom(r *http.Request) string {
	if session := r.Header.Get("X-Session-ID"); session != "" {
		return session
	}
	return defaultSession
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a service error to an HTTP status. Domain errors
// carry their own codes; anything else is an internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, "internal server error", logger)
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeProductNotFound, model.ErrCodeLineNotFound, model.ErrCodePartnerNotFound:
		status = http.StatusNotFound
	}

	writeJSON(w, status, model.ErrorResponse{
		Error:   domainErr.Code,
		Message: domainErr.Message,
	})
}
