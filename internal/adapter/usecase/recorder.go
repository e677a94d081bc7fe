package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"newsletter-dispatch/internal/core/domain"
	"newsletter-dispatch/internal/core/port"
)

// recordTimeout bounds a history write that outlives the run context.
const recordTimeout = 10 * time.Second

// OutcomeRecorder owns the send history: it reads the latest record for the
// due-check and appends one record per delivery attempt.
type OutcomeRecorder struct {
	repo   port.CampaignRepository
	logger *slog.Logger
}

// NewOutcomeRecorder returns a recorder writing through repo.
func NewOutcomeRecorder(repo port.CampaignRepository, logger *slog.Logger) *OutcomeRecorder {
	return &OutcomeRecorder{repo: repo, logger: logger}
}

// Last returns the newest record of campaignID or nil if there is none.
func (r *OutcomeRecorder) Last(ctx context.Context, campaignID string) (*domain.SendRecord, error) {
	rec, err := r.repo.LastRecord(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("last send record: %w", err)
	}
	if rec == nil {
		r.logger.Debug("no send history", slog.String("campaign_id", campaignID))
	}
	return rec, nil
}

// Append writes a success record when cause is nil and a failure record
// otherwise. The record is stamped with at, the instant the run evaluated
// the campaign, so a delivery ending after midnight counts for its due date.
// The write is detached from ctx cancellation; a failed write is logged and
// swallowed.
func (r *OutcomeRecorder) Append(ctx context.Context, campaignID string, at time.Time, cause error) {
	rec := domain.SendRecord{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		SentAt:     at,
		Status:     domain.OutcomeSuccess,
	}
	if cause != nil {
		rec.Status = domain.OutcomeFailure
		rec.Error = cause.Error()
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := r.repo.AppendRecord(ctx, campaignID, rec); err != nil {
		r.logger.Error("failed to record send outcome",
			slog.String("campaign_id", campaignID),
			slog.String("status", rec.Status),
			slog.Any("error", err),
		)
		return
	}
	r.logger.Info("recorded send outcome",
		slog.String("campaign_id", campaignID),
		slog.String("status", rec.Status),
	)
}
