package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"newsletter-dispatch/internal/core/domain"
)

// RecipientResolver maps a campaign's audience onto the active roster.
type RecipientResolver struct {
	logger *slog.Logger
}

// NewRecipientResolver returns a resolver that logs through logger.
func NewRecipientResolver(logger *slog.Logger) *RecipientResolver {
	return &RecipientResolver{logger: logger}
}

// Resolve returns the recipients of c among subscribers, which are assumed
// to be active already. Order follows the roster and duplicates are kept.
// An explicit audience without addresses yields an empty list, not an
// error.
func (r *RecipientResolver) Resolve(c domain.Campaign, subscribers []domain.Subscriber) ([]domain.Recipient, error) {
	switch c.Audience.Mode {
	case domain.AddresseeAll:
		recipients := make([]domain.Recipient, 0, len(subscribers))
		for _, s := range subscribers {
			recipients = append(recipients, s.Recipient())
		}
		r.logger.Debug("targeting all active subscribers",
			slog.String("campaign_id", c.ID),
			slog.Int("recipients", len(recipients)),
		)
		return recipients, nil

	case domain.AddresseeSome:
		if len(c.Audience.Emails) == 0 {
			r.logger.Warn("addressee mode is some but no addresses are configured",
				slog.String("campaign_id", c.ID),
			)
			return []domain.Recipient{}, nil
		}
		wanted := make(map[string]struct{}, len(c.Audience.Emails))
		for _, e := range c.Audience.Emails {
			wanted[normalizeEmail(e)] = struct{}{}
		}
		recipients := make([]domain.Recipient, 0, len(c.Audience.Emails))
		for _, s := range subscribers {
			if _, ok := wanted[normalizeEmail(s.Email)]; ok {
				recipients = append(recipients, s.Recipient())
			}
		}
		r.logger.Debug("targeting listed subscribers",
			slog.String("campaign_id", c.ID),
			slog.Int("listed", len(c.Audience.Emails)),
			slog.Int("recipients", len(recipients)),
		)
		return recipients, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAudience, c.Audience.Mode)
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
