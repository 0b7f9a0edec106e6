package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"EmoticonBackend/internal/logger"
	"EmoticonBackend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Error().Err(err).Msg("failed to encode JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps the service failure taxonomy onto HTTP
// statuses. Unexpected errors become a generic 500; the details stay
// in the server log and never reach the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrFileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMissingCategory),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrMissingFile),
		errors.Is(err, service.ErrUnsupportedType),
		errors.Is(err, service.ErrInvalidArchive),
		errors.Is(err, service.ErrEmptyArchive),
		errors.Is(err, service.ErrAllOversized):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		var tooLarge *service.PayloadTooLargeError
		var unreadable *service.UnreadableImageError
		var oversize *service.OversizeError
		if errors.As(err, &tooLarge) || errors.As(err, &unreadable) || errors.As(err, &oversize) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Get().Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type passwordRequest struct {
	Password string `json:"password"`
}

func decodePassword(r *http.Request) string {
	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ""
	}
	return req.Password
}
