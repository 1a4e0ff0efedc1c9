package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"marketing-api/internal/core/domain"
)

type message struct {
	Message string `json:"message"`
}

type deleted struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type status struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(r.Context(), "encode response error", slog.Any("error", err))
	}
}

// fail maps a use case error to a response. entity names the resource the
// not-found message refers to.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, entity string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.respond(w, r, http.StatusNotFound, message{Message: entity + " not found"})
		return
	}
	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("entity", entity),
		slog.Any("error", err),
	)
	h.respond(w, r, http.StatusInternalServerError, message{Message: err.Error()})
}

// decode reads the request body into dst. An empty body decodes as {}.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	h.respond(w, r, http.StatusBadRequest, message{Message: "invalid JSON: " + err.Error()})
	return false
}
