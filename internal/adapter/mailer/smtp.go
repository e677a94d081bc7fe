package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"newsletter-dispatch/internal/config/configs"
	"newsletter-dispatch/internal/core/domain"
)

// HeaderOccurrenceKey carries the campaign occurrence so receivers can drop
// duplicates.
const HeaderOccurrenceKey mail.Header = "X-Newsletter-Occurrence"

type smtpClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPSender implements port.Delivery over SMTP. Every recipient gets an
// individual message so addresses are never disclosed to each other. All
// messages of a campaign go over one connection and any failure fails the
// whole attempt.
type SMTPSender struct {
	client smtpClient
	logger *slog.Logger
}

// NewSMTPSender builds a go-mail client from cfg. Authentication is only
// configured when a username is set.
func NewSMTPSender(cfg configs.SMTP, logger *slog.Logger) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}
	return &SMTPSender{client: client, logger: logger}, nil
}

// Send delivers msg to every recipient.
func (s *SMTPSender) Send(ctx context.Context, msg domain.Message) (domain.DeliveryReceipt, error) {
	if len(msg.Recipients) == 0 {
		return domain.DeliveryReceipt{}, nil
	}
	batch, err := buildMessages(msg)
	if err != nil {
		return domain.DeliveryReceipt{}, err
	}
	if err = s.client.DialAndSendWithContext(ctx, batch...); err != nil {
		return domain.DeliveryReceipt{}, fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Debug("smtp batch sent",
		slog.String("campaign_id", msg.CampaignID),
		slog.Int("messages", len(batch)),
	)
	return domain.DeliveryReceipt{Accepted: len(batch), ProviderRef: msg.OccurrenceKey}, nil
}

func buildMessages(msg domain.Message) ([]*mail.Msg, error) {
	batch := make([]*mail.Msg, 0, len(msg.Recipients))
	for _, rcpt := range msg.Recipients {
		m := mail.NewMsg()
		if err := m.FromFormat(msg.FromName, msg.FromAddress); err != nil {
			return nil, fmt.Errorf("failed to set from: %w", err)
		}
		if err := m.AddToFormat(rcpt.Name, rcpt.Address); err != nil {
			return nil, fmt.Errorf("failed to set to %q: %w", rcpt.Address, err)
		}
		m.Subject(msg.Subject)
		m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
		m.SetGenHeader(HeaderOccurrenceKey, msg.OccurrenceKey)
		m.SetMessageID()
		batch = append(batch, m)
	}
	return batch, nil
}
