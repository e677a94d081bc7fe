package mailer

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"newsletter-dispatch/internal/core/domain"
	"newsletter-dispatch/internal/core/port"
)

// Throttled limits how often the wrapped delivery is called. Parallel
// campaign workers share one limiter.
type Throttled struct {
	next    port.Delivery
	limiter *rate.Limiter
}

// NewThrottled wraps next with a token bucket of perSecond and burst.
func NewThrottled(next port.Delivery, perSecond float64, burst int) *Throttled {
	if burst < 1 {
		burst = 1
	}
	return &Throttled{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Send waits for a token and then delegates. A context that ends while
// waiting fails the attempt without calling the provider.
func (t *Throttled) Send(ctx context.Context, msg domain.Message) (domain.DeliveryReceipt, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return domain.DeliveryReceipt{}, fmt.Errorf("delivery throttle: %w", err)
	}
	return t.next.Send(ctx, msg)
}
