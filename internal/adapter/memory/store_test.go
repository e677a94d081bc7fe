package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter-dispatch/internal/core/domain"
)

func TestStoreHistory(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	last, err := s.LastRecord(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, last)

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.AppendRecord(ctx, "c1", domain.SendRecord{ID: "a", SentAt: base.Add(time.Hour), Status: domain.OutcomeSuccess}))
	require.NoError(t, s.AppendRecord(ctx, "c1", domain.SendRecord{ID: "b", SentAt: base, Status: domain.OutcomeFailure}))
	require.NoError(t, s.AppendRecord(ctx, "c2", domain.SendRecord{ID: "c", SentAt: base.Add(48 * time.Hour)}))

	last, err = s.LastRecord(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "a", last.ID)

	records, err := s.ListRecords(ctx, "c1", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "c1", records[1].CampaignID)

	records, err = s.ListRecords(ctx, "c1", 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStoreCampaignsAndSubscribers(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	s.PutCampaign(domain.Campaign{ID: "c1", Title: "first"})
	s.PutCampaign(domain.Campaign{ID: "c1", Title: "renamed"})
	s.PutSubscriber(domain.Subscriber{ID: "s1", Email: "a@x.com", Status: domain.SubscriberActive})
	s.PutSubscriber(domain.Subscriber{ID: "s2", Email: "b@x.com", Status: domain.SubscriberInactive})

	campaigns, err := s.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "renamed", campaigns[0].Title)

	c, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", c.Title)

	_, err = s.GetCampaign(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)

	subs, err := s.ListActiveSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "a@x.com", subs[0].Email)
}
