package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"newsletter-dispatch/internal/core/domain"
)

// Store is an in-process implementation of port.CampaignRepository and
// port.SubscriberRepository. It backs the memory store driver and tests.
type Store struct {
	mu          sync.RWMutex
	campaigns   []domain.Campaign
	subscribers []domain.Subscriber
	records     map[string][]domain.SendRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string][]domain.SendRecord)}
}

// PutCampaign inserts or replaces a campaign by id.
func (s *Store) PutCampaign(c domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		if s.campaigns[i].ID == c.ID {
			s.campaigns[i] = c
			return
		}
	}
	s.campaigns = append(s.campaigns, c)
}

// PutSubscriber inserts or replaces a subscriber by id.
func (s *Store) PutSubscriber(sub domain.Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.subscribers {
		if s.subscribers[i].ID == sub.ID {
			s.subscribers[i] = sub
			return
		}
	}
	s.subscribers = append(s.subscribers, sub)
}

// ListCampaigns returns a copy of all campaigns.
func (s *Store) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.campaigns), nil
}

// GetCampaign returns a campaign by id.
func (s *Store) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.campaigns {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrCampaignNotFound
}

// LastRecord returns the record with the latest SentAt.
func (s *Store) LastRecord(ctx context.Context, campaignID string) (*domain.SendRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var last *domain.SendRecord
	for _, r := range s.records[campaignID] {
		if last == nil || r.SentAt.After(last.SentAt) {
			last = &r
		}
	}
	return last, nil
}

// AppendRecord appends rec to the campaign's history.
func (s *Store) AppendRecord(ctx context.Context, campaignID string, rec domain.SendRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec.CampaignID = campaignID
	if rec.SentAt.IsZero() {
		rec.SentAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[campaignID] = append(s.records[campaignID], rec)
	return nil
}

// ListRecords returns up to limit records, newest first.
func (s *Store) ListRecords(ctx context.Context, campaignID string, limit int) ([]domain.SendRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	records := slices.Clone(s.records[campaignID])
	s.mu.RUnlock()

	slices.SortStableFunc(records, func(a, b domain.SendRecord) int {
		return b.SentAt.Compare(a.SentAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// ListActiveSubscribers returns subscribers whose status is active.
func (s *Store) ListActiveSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := make([]domain.Subscriber, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		if sub.Status == domain.SubscriberActive {
			active = append(active, sub)
		}
	}
	return active, nil
}
