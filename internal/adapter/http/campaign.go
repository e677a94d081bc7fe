package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"newsletter-dispatch/internal/core/domain"
)

// handleHistory returns the newest send records of a campaign. It accepts an
// optional `limit` query parameter. Invalid parameters result in HTTP 400,
// unknown campaigns in HTTP 404.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "invalid 'limit'", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.svc.History(r.Context(), id, limit)
	if err != nil {
		h.writeError(w, r, "history error", err)
		return
	}
	if records == nil {
		records = []domain.SendRecord{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

// handleDue evaluates whether a campaign would be sent at `at` (RFC3339,
// defaults to now) without sending it.
func (h *Handler) handleDue(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var at time.Time
	if s := r.URL.Query().Get("at"); s != "" {
		var err error
		at, err = time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid 'at' timestamp", http.StatusBadRequest)
			return
		}
	}

	preview, err := h.svc.Preview(r.Context(), id, at)
	if err != nil {
		h.writeError(w, r, "due preview error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, preview)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, domain.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	h.logger.Error(msg, slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
