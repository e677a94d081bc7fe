package mailer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"newsletter-dispatch/internal/core/domain"
	"newsletter-dispatch/internal/core/port/mocks"
)

type fakeClient struct {
	sent []*mail.Msg
	err  error
}

func (c *fakeClient) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, messages...)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newsletter(recipients ...domain.Recipient) domain.Message {
	return domain.Message{
		CampaignID:    "c1",
		FromAddress:   "news@example.com",
		FromName:      "Newsletter",
		Subject:       "Hello",
		HTMLBody:      "<p>hi</p>",
		Recipients:    recipients,
		OccurrenceKey: "c1:2024-03-04",
	}
}

func TestSMTPSenderOneMessagePerRecipient(t *testing.T) {
	client := &fakeClient{}
	s := &SMTPSender{client: client, logger: discardLogger()}

	receipt, err := s.Send(context.Background(), newsletter(
		domain.Recipient{Address: "a@x.com", Name: "A"},
		domain.Recipient{Address: "b@x.com", Name: "B"},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, receipt.Accepted)
	assert.Equal(t, "c1:2024-03-04", receipt.ProviderRef)

	require.Len(t, client.sent, 2)
	for i, want := range []string{"a@x.com", "b@x.com"} {
		rcpts, err := client.sent[i].GetRecipients()
		require.NoError(t, err)
		assert.Equal(t, []string{want}, rcpts)
		assert.Equal(t, []string{"c1:2024-03-04"}, client.sent[i].GetGenHeader(HeaderOccurrenceKey))
	}
}

func TestSMTPSenderFailureFailsCampaign(t *testing.T) {
	s := &SMTPSender{client: &fakeClient{err: errors.New("454 try again")}, logger: discardLogger()}
	_, err := s.Send(context.Background(), newsletter(domain.Recipient{Address: "a@x.com"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "454 try again")
}

func TestSMTPSenderRejectsInvalidAddress(t *testing.T) {
	client := &fakeClient{}
	s := &SMTPSender{client: client, logger: discardLogger()}
	_, err := s.Send(context.Background(), newsletter(domain.Recipient{Address: "not-an-address"}))
	require.Error(t, err)
	assert.Empty(t, client.sent)
}

func TestSMTPSenderEmptyRecipients(t *testing.T) {
	client := &fakeClient{}
	s := &SMTPSender{client: client, logger: discardLogger()}
	receipt, err := s.Send(context.Background(), newsletter())
	require.NoError(t, err)
	assert.Zero(t, receipt.Accepted)
	assert.Empty(t, client.sent)
}

func TestLogSender(t *testing.T) {
	receipt, err := NewLogSender(discardLogger()).Send(context.Background(),
		newsletter(domain.Recipient{Address: "a@x.com"}))
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.Accepted)
}

func TestThrottledDelegates(t *testing.T) {
	next := mocks.NewMockDelivery(t)
	msg := newsletter(domain.Recipient{Address: "a@x.com"})
	next.EXPECT().Send(mock.Anything, msg).Return(domain.DeliveryReceipt{Accepted: 1}, nil).Twice()

	th := NewThrottled(next, 1000, 2)
	for range 2 {
		receipt, err := th.Send(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, 1, receipt.Accepted)
	}
}

func TestThrottledHonoursContext(t *testing.T) {
	next := mocks.NewMockDelivery(t)
	next.EXPECT().Send(mock.Anything, mock.Anything).Return(domain.DeliveryReceipt{}, nil).Once()

	th := NewThrottled(next, 0.001, 1)
	_, err := th.Send(context.Background(), newsletter())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = th.Send(ctx, newsletter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery throttle")
}
