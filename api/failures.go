package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/levelobjects"
	"github.com/a-h/levelobjects/db"
)

type errorResponse struct {
	Error string `json:"error"`
}

func failCode(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// failErr maps an error to an HTTP status. Validation failures are the
// caller's fault, not-found is distinguishable from internal failure, and a
// timed-out connection acquisition reports resource exhaustion.
func failErr(log *slog.Logger, w http.ResponseWriter, err error) {
	var invalid levelobjects.ErrInvalidVersion
	switch {
	case errors.As(err, &invalid):
		failCode(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrNotFound):
		failCode(w, http.StatusNotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.Error("request failed", slog.Any("error", err))
		failCode(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Error("request failed", slog.Any("error", err))
		failCode(w, http.StatusInternalServerError, err.Error())
	}
}

func respondJSON(log *slog.Logger, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response", slog.Any("error", err))
	}
}
