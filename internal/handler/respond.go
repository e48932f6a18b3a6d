// Package handler holds the shared HTTP response helpers used by the
// concrete handler packages.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/velastore/vela/internal/domain"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are gone; nothing left to do but log.
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

// errorBody is the uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

// Error maps a domain error to an HTTP status and writes the uniform
// error payload. Internal errors are logged with their operation; the
// client only sees a generic message.
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	status := statusFromCode(code)

	if status >= 500 {
		logger.Error("request failed",
			slog.String("op", domain.ErrorOp(err)),
			slog.String("code", code),
			slog.String("error", err.Error()))
	}

	JSON(w, status, errorBody{Error: domain.ErrorMessage(err)})
}

func statusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
