package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"marketing-api/internal/core/port"
)

// Pinger reports whether the relational store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services groups the use cases the handler exposes.
type Services struct {
	Campaigns   port.CampaignUseCase
	Profiles    port.ProfileUseCase
	Experiments port.ExperimentUseCase
	Brands      port.BrandUseCase
	Store       Pinger
}

// Handler is the inbound HTTP adapter. Every resource router is mounted
// under prefix; the liveness endpoints stay at the root.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, prefix string, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", h.handleRoot)
	r.Get("/healthz", h.handleHealth)

	routes := func(r chi.Router) {
		r.Route("/campaigns", h.campaignRoutes)
		r.Route("/profiles", h.profileRoutes)
		r.Route("/experiments", h.experimentRoutes)
		r.Route("/brands", h.brandRoutes)
	}
	if prefix == "" || prefix == "/" {
		r.Group(routes)
	} else {
		r.Route(prefix, routes)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Telecom Analytics API is running"))
}

// handleHealth reports 503 when the store cannot be pinged. Reads keep
// working from the fallback dataset in that state.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Store.Ping(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "store ping failed", slog.Any("error", err))
		h.respond(w, r, http.StatusServiceUnavailable, status{Status: "degraded", Error: err.Error()})
		return
	}
	h.respond(w, r, http.StatusOK, status{Status: "ok"})
}
