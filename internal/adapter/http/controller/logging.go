package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kernel808/banknet/internal/commons"
	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
	"github.com/kernel808/banknet/internal/usecase/services"
)

func logRequest(r *http.Request, payload any) {
	logger.Info("http request", logger.Fields{
		"method":  r.Method,
		"path":    r.URL.Path,
		"query":   r.URL.RawQuery,
		"payload": logger.SanitizePayload(payload),
	})
}

func logResponse(r *http.Request, status int, start time.Time) {
	logger.Info("http response", logger.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"durationMs": time.Since(start).Milliseconds(),
	})
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"query":  r.URL.RawQuery,
	}
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("http handler error", err, fields)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps the domain error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	var validationErr *domain.ValidationError
	var authErr *domain.AuthorizationError
	var stateErr *domain.InvalidStateError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		return http.StatusForbidden
	case errors.As(err, &stateErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError surfaces the error kind and message verbatim; the engine has
// already attached the transfer ID, action and status context.
func writeError[T any](w http.ResponseWriter, r *http.Request, err error, message string, start time.Time) {
	logError(r, err, nil)
	status := statusForError(err)
	writeJSON(w, status, commons.ErrorResponse[T](message, err.Error()))
	logResponse(r, status, start)
}
