package port

import (
	"context"
	"time"

	"newsletter-dispatch/internal/core/domain"
)

// CampaignRepository defines read access to campaign definitions and the
// append-only send history. It is an outbound port in hexagonal
// architecture. Implementations must be safe for concurrent use.
type CampaignRepository interface {
	// ListCampaigns returns every campaign definition. Rows whose schedule
	// cannot be decoded are returned with Campaign.Malformed set rather than
	// failing the whole listing.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id or domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// LastRecord returns the newest history entry by SentAt, or nil when the
	// campaign was never attempted.
	LastRecord(ctx context.Context, campaignID string) (*domain.SendRecord, error)
	// AppendRecord adds one history entry. Records are never updated.
	AppendRecord(ctx context.Context, campaignID string, rec domain.SendRecord) error
	// ListRecords returns up to limit history entries, newest first.
	ListRecords(ctx context.Context, campaignID string, limit int) ([]domain.SendRecord, error)
}

// SubscriberRepository defines read access to the recipient roster.
type SubscriberRepository interface {
	// ListActiveSubscribers returns subscribers whose status is active.
	ListActiveSubscribers(ctx context.Context) ([]domain.Subscriber, error)
}

// Delivery sends one rendered campaign to all of its recipients. Any
// provider failure, including a partial rejection, is returned as a single
// error for the whole message.
type Delivery interface {
	Send(ctx context.Context, msg domain.Message) (domain.DeliveryReceipt, error)
}

// Clock supplies the current instant in the deployment's time zone.
type Clock interface {
	Now() time.Time
}
