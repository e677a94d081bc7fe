package mailer

import (
	"context"
	"log/slog"

	"newsletter-dispatch/internal/core/domain"
)

// LogSender implements port.Delivery by logging each message. It backs the
// log delivery driver used for local runs.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg domain.Message) (domain.DeliveryReceipt, error) {
	addresses := make([]string, 0, len(msg.Recipients))
	for _, r := range msg.Recipients {
		addresses = append(addresses, r.Address)
	}
	s.logger.Info("newsletter delivered to log",
		slog.String("campaign_id", msg.CampaignID),
		slog.String("occurrence", msg.OccurrenceKey),
		slog.String("subject", msg.Subject),
		slog.Any("recipients", addresses),
	)
	return domain.DeliveryReceipt{Accepted: len(msg.Recipients), ProviderRef: msg.OccurrenceKey}, nil
}
