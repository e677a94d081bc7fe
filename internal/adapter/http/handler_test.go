package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsletter-dispatch/internal/adapter/memory"
	"newsletter-dispatch/internal/adapter/usecase"
	"newsletter-dispatch/internal/core/domain"
	"newsletter-dispatch/internal/core/port"
	"newsletter-dispatch/internal/core/port/mocks"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type countingDelivery struct{ calls int }

func (d *countingDelivery) Send(_ context.Context, msg domain.Message) (domain.DeliveryReceipt, error) {
	d.calls++
	return domain.DeliveryReceipt{Accepted: len(msg.Recipients)}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) (*httptest.Server, *memory.Store, *countingDelivery) {
	t.Helper()
	store := memory.NewStore()
	store.PutCampaign(domain.Campaign{
		ID:       "daily",
		SendHour: 9,
		Schedule: domain.Daily{},
		Audience: domain.Audience{Mode: domain.AddresseeAll},
		Content:  domain.Content{Subject: "Hi"},
	})
	store.PutSubscriber(domain.Subscriber{ID: "s1", Email: "a@x.com", Status: domain.SubscriberActive})

	delivery := &countingDelivery{}
	clock := fixedClock(time.Date(2024, 3, 4, 9, 10, 0, 0, time.UTC))
	svc := usecase.NewDispatchUseCase(store, store, delivery, discardLogger(), usecase.WithClock(clock))

	srv := httptest.NewServer(NewHandler(svc, discardLogger(), time.Minute).Router())
	t.Cleanup(srv.Close)
	return srv, store, delivery
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRunThenHistory(t *testing.T) {
	srv, _, delivery := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/dispatch/run", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats port.RunStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, int64(1), stats.Sent)
	assert.Equal(t, 1, delivery.calls)

	resp, err = http.Get(srv.URL + "/api/v1/campaigns/daily/history?limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []domain.SendRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, domain.OutcomeSuccess, records[0].Status)
}

func TestHistoryErrors(t *testing.T) {
	srv, _, _ := newTestServer(t)

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/v1/campaigns/daily/history", want: http.StatusOK},
		{path: "/api/v1/campaigns/daily/history?limit=abc", want: http.StatusBadRequest},
		{path: "/api/v1/campaigns/daily/history?limit=0", want: http.StatusBadRequest},
		{path: "/api/v1/campaigns/missing/history", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestDue(t *testing.T) {
	srv, _, delivery := newTestServer(t)

	get := func(path string) (*http.Response, port.DuePreview) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		var p port.DuePreview
		if resp.StatusCode == http.StatusOK {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
		}
		return resp, p
	}

	resp, p := get("/api/v1/campaigns/daily/due")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, p.Due)

	resp, p = get("/api/v1/campaigns/daily/due?at=2024-03-04T15:00:00Z")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, p.Due)
	assert.NotEmpty(t, p.Reason)

	resp, _ = get("/api/v1/campaigns/daily/due?at=tomorrow")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get("/api/v1/campaigns/missing/due")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Zero(t, delivery.calls)
}

func TestRunFetchFailure(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	subscribers := mocks.NewMockSubscriberRepository(t)
	campaigns.EXPECT().ListCampaigns(mock.Anything).Return(nil, errors.New("connection refused"))
	subscribers.EXPECT().ListActiveSubscribers(mock.Anything).Return(nil, nil).Maybe()

	svc := usecase.NewDispatchUseCase(campaigns, subscribers, &countingDelivery{}, discardLogger())
	h := NewHandler(svc, discardLogger(), time.Minute)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dispatch/run", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
