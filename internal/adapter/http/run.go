package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
)

// handleRun performs one dispatch run and returns its stats. The run is
// detached from the client connection so a dropped request does not cut
// it short; it is bounded by the configured run timeout instead. A failed
// snapshot fetch results in HTTP 503.
func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), h.runTimeout)
	defer cancel()

	stats, err := h.svc.Run(ctx)
	if err != nil {
		h.logger.Error("manual dispatch run error", slog.Any("error", err))
		http.Error(w, "dispatch run failed", http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
