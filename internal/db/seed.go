package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsletter-dispatch/internal/core/domain"
)

// demoID derives a stable id so reseeding never duplicates rows.
func demoID(kind string, n int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "newsletter-dispatch/demo/%s/%d", kind, n)).String()
}

// DemoSubscribers returns a small roster with one inactive entry.
func DemoSubscribers(now time.Time) []domain.Subscriber {
	subs := make([]domain.Subscriber, 0, 6)
	for i := 1; i <= 6; i++ {
		status := domain.SubscriberActive
		if i == 6 {
			status = domain.SubscriberInactive
		}
		subs = append(subs, domain.Subscriber{
			ID:           demoID("subscriber", i),
			Email:        fmt.Sprintf("subscriber%d@example.com", i),
			Name:         fmt.Sprintf("Subscriber %d", i),
			BusinessName: fmt.Sprintf("Business %d", i),
			Status:       status,
			CreatedAt:    now.Add(time.Duration(i) * time.Minute),
		})
	}
	return subs
}

// DemoCampaigns returns one campaign per schedule mode, all due at hour.
func DemoCampaigns(now time.Time, hour int) []domain.Campaign {
	today := domain.DateOf(now)
	return []domain.Campaign{
		{
			ID:       demoID("campaign", 1),
			Title:    "Daily digest",
			SendHour: hour,
			Schedule: domain.Daily{},
			Audience: domain.Audience{Mode: domain.AddresseeAll},
			Content:  domain.Content{Subject: "Today's digest", Body: "<h1>Daily digest</h1>"},
		},
		{
			ID:       demoID("campaign", 2),
			Title:    "Weekday update",
			SendHour: hour,
			Schedule: domain.Weekly{Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
			Audience: domain.Audience{
				Mode:   domain.AddresseeSome,
				Emails: []string{"subscriber1@example.com", "subscriber3@example.com"},
			},
			Content: domain.Content{
				Subject:  "Weekday update",
				Body:     "<p>What changed this week.</p>",
				FileURLs: []string{"https://example.com/files/update.pdf"},
			},
		},
		{
			ID:       demoID("campaign", 3),
			Title:    "Launch announcement",
			SendHour: hour,
			Schedule: domain.Once{Date: today},
			Audience: domain.Audience{Mode: domain.AddresseeAll},
			Content:  domain.Content{Subject: "We launched", Body: "<p>It is live.</p>"},
		},
	}
}

// Seed inserts the demo roster and campaigns. Existing rows are left
// untouched.
func Seed(ctx context.Context, db *pgxpool.Pool, now time.Time, hour int) error {
	for _, s := range DemoSubscribers(now) {
		_, err := db.Exec(ctx, `INSERT INTO subscribers
    (id, email, name, business_name, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			s.ID, s.Email, s.Name, s.BusinessName, s.Status, s.CreatedAt)
		if err != nil {
			return fmt.Errorf("seed subscriber %s: %w", s.Email, err)
		}
	}

	for _, c := range DemoCampaigns(now, hour) {
		var (
			sendDate *time.Time
			days     = []string{}
		)
		switch s := c.Schedule.(type) {
		case domain.Once:
			d := s.Date.In(time.UTC)
			sendDate = &d
		case domain.Weekly:
			days = s.DayNames()
		}
		emails := c.Audience.Emails
		if emails == nil {
			emails = []string{}
		}
		files := c.Content.FileURLs
		if files == nil {
			files = []string{}
		}
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, title, send_hour, mode, send_date, days, addressee_mode, addressee_emails,
     subject, body, file_urls, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now(),now()) ON CONFLICT DO NOTHING`,
			c.ID, c.Title, c.SendHour, c.Schedule.Mode(), sendDate, days,
			c.Audience.Mode, emails, c.Content.Subject, c.Content.Body, files)
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", c.Title, err)
		}
	}
	return nil
}
