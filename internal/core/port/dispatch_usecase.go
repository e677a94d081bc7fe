package port

import (
	"context"
	"time"

	"newsletter-dispatch/internal/core/domain"
)

// DispatchUseCase defines the operations exposed by the dispatcher. This
// interface is the primary port into the application domain and is used by
// the scheduler and the HTTP adapter.
type DispatchUseCase interface {
	// Run evaluates every campaign once against the current instant, sends
	// the due ones and records their outcome. Only a failure to fetch the
	// campaign or subscriber snapshot is returned as an error; per-campaign
	// problems are counted in the returned stats.
	Run(ctx context.Context) (*RunStats, error)

	// History returns up to limit send records of a campaign, newest first.
	History(ctx context.Context, campaignID string, limit int) ([]domain.SendRecord, error)

	// Preview evaluates the due-check for a campaign at the given instant
	// without sending anything.
	Preview(ctx context.Context, campaignID string, at time.Time) (*DuePreview, error)
}

// RunStats contains the counters of one dispatch run. They are reported in
// logs and to manual triggers but never persisted.
type RunStats struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
	Campaigns  int           `json:"campaigns"`
	Recipients int           `json:"recipients"`
	Sent       int64         `json:"sent"`
	Skipped    int64         `json:"skipped"`
	Failed     int64         `json:"failed"`
}

// DuePreview is the result of a dry due-check.
type DuePreview struct {
	CampaignID string             `json:"campaign_id"`
	At         time.Time          `json:"at"`
	Due        bool               `json:"due"`
	LastRecord *domain.SendRecord `json:"last_record,omitempty"`
	Reason     string             `json:"reason,omitempty"`
}
