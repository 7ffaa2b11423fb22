package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"meal-pickup/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies read by decodeJSON.
const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the acknowledgement body returned by admin mutations.
type MessageResponse struct {
	Message string `json:"message"`
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

// writeServiceError maps a service error to its HTTP status. Classified errors carry their own
// user-facing message; anything else is reported with fallback so internals never leak.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("unexpected service error")
		writeError(w, http.StatusInternalServerError, fallback, logger)
		return
	}

	switch domainErr.Code {
	case model.ErrCodeValidation:
		writeError(w, http.StatusBadRequest, domainErr.Message, logger)
	case model.ErrCodeUnauthorised:
		writeError(w, http.StatusUnauthorized, domainErr.Message, logger)
	case model.ErrCodeNotFound:
		writeError(w, http.StatusNotFound, domainErr.Message, logger)
	default:
		logger.Error().Err(err).Msg("storage failure")
		writeError(w, http.StatusInternalServerError, fallback, logger)
	}
}

// decodeJSON reads the request body into dst. An empty body decodes as an empty object.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil || len(body) > maxBodyBytes {
		return errInvalidBody
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errInvalidBody
	}
	return nil
}
