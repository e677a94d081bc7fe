package domain

import "time"

// Send outcomes as persisted in the history log.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// SendRecord is one append-only history entry for a delivery attempt.
type SendRecord struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	SentAt     time.Time `json:"sent_at"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
}
