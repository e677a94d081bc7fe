package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"newsletter-dispatch/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP giving operators a manual trigger and read access to send history.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc        port.DispatchUseCase
	logger     *slog.Logger
	router     chi.Router
	runTimeout time.Duration
}

// NewHandler creates a handler with all routes configured. runTimeout
// bounds manually triggered runs.
func NewHandler(svc port.DispatchUseCase, logger *slog.Logger, runTimeout time.Duration) *Handler {
	h := &Handler{svc: svc, logger: logger, runTimeout: runTimeout}
	r := chi.NewRouter()

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/dispatch/run", h.handleRun)
		r.Get("/campaigns/{id}/history", h.handleHistory)
		r.Get("/campaigns/{id}/due", h.handleDue)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already written
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
