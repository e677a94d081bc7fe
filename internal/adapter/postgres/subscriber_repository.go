package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsletter-dispatch/internal/core/domain"
)

// SubscriberRepository implements port.SubscriberRepository.
type SubscriberRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

// ListActiveSubscribers returns active subscribers in sign-up order.
func (r *SubscriberRepository) ListActiveSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, email, name, business_name, status, created_at
        FROM subscribers
        WHERE status = $1
        ORDER BY created_at, id`, domain.SubscriberActive)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscriber, error) {
		var s domain.Subscriber
		err := row.Scan(&s.ID, &s.Email, &s.Name, &s.BusinessName, &s.Status, &s.CreatedAt)
		return s, err
	})
}
