package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsletter-dispatch/internal/core/domain"
)

const campaignColumns = `
        id,
        title,
        send_hour,
        mode,
        send_date,
        days,
        addressee_mode,
        addressee_emails,
        subject,
        body,
        file_urls,
        created_at,
        updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListCampaigns returns every campaign. A row whose schedule cannot be
// decoded is returned with Malformed set.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LastRecord returns the newest send record or nil.
func (r *CampaignRepository) LastRecord(ctx context.Context, campaignID string) (*domain.SendRecord, error) {
	var rec domain.SendRecord
	err := r.pool.QueryRow(ctx, `
        SELECT id, campaign_id, sent_at, status, error
        FROM send_records
        WHERE campaign_id = $1
        ORDER BY sent_at DESC
        LIMIT 1`, campaignID).
		Scan(&rec.ID, &rec.CampaignID, &rec.SentAt, &rec.Status, &rec.Error)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// AppendRecord inserts one send record.
func (r *CampaignRepository) AppendRecord(ctx context.Context, campaignID string, rec domain.SendRecord) error {
	if rec.SentAt.IsZero() {
		rec.SentAt = time.Now()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO send_records (id, campaign_id, sent_at, status, error) VALUES ($1,$2,$3,$4,$5)`,
		rec.ID, campaignID, rec.SentAt.UTC(), rec.Status, rec.Error)
	if err != nil {
		return fmt.Errorf("insert send record: %w", err)
	}
	return nil
}

// ListRecords returns up to limit records, newest first.
func (r *CampaignRepository) ListRecords(ctx context.Context, campaignID string, limit int) ([]domain.SendRecord, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, sent_at, status, error
        FROM send_records
        WHERE campaign_id = $1
        ORDER BY sent_at DESC
        LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SendRecord, error) {
		var rec domain.SendRecord
		err := row.Scan(&rec.ID, &rec.CampaignID, &rec.SentAt, &rec.Status, &rec.Error)
		return rec, err
	})
}

// scanCampaign decodes one campaigns row. Only scan errors are returned;
// schedule decoding errors end up in Campaign.Malformed.
func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c        domain.Campaign
		mode     string
		sendDate *time.Time
		days     []string
	)
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.SendHour,
		&mode,
		&sendDate,
		&days,
		&c.Audience.Mode,
		&c.Audience.Emails,
		&c.Content.Subject,
		&c.Content.Body,
		&c.Content.FileURLs,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}

	var date *domain.Date
	if sendDate != nil {
		d := domain.DateOf(*sendDate)
		date = &d
	}
	c.Schedule, c.Malformed = domain.NewSchedule(mode, date, days)
	return c, nil
}
