package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter-dispatch/internal/core/domain"
)

// fakeRow feeds fixed column values to scanCampaign.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: want %d columns, got %d", len(r.values), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *int:
			*p = r.values[i].(int)
		case **time.Time:
			*p, _ = r.values[i].(*time.Time)
		case *[]string:
			*p, _ = r.values[i].([]string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

func campaignRow(mode string, sendDate *time.Time, days []string) fakeRow {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return fakeRow{values: []any{
		"c1", "Weekly digest", 9, mode, sendDate, days,
		domain.AddresseeSome, []string{"a@x.com"},
		"Subject", "<p>Body</p>", []string{"https://files/a.pdf"},
		created, created,
	}}
}

func TestScanCampaign(t *testing.T) {
	t.Run("weekly", func(t *testing.T) {
		c, err := scanCampaign(campaignRow(domain.ModeSomeDays, nil, []string{"monday", "friday"}))
		require.NoError(t, err)
		assert.NoError(t, c.Malformed)
		assert.Equal(t, "Weekly digest", c.Title)
		assert.Equal(t, 9, c.SendHour)
		assert.Equal(t, domain.Weekly{Days: []time.Weekday{time.Monday, time.Friday}}, c.Schedule)
		assert.Equal(t, []string{"a@x.com"}, c.Audience.Emails)
		assert.Equal(t, []string{"https://files/a.pdf"}, c.Content.FileURLs)
	})

	t.Run("unique", func(t *testing.T) {
		d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		c, err := scanCampaign(campaignRow(domain.ModeUnique, &d, nil))
		require.NoError(t, err)
		assert.Equal(t, domain.Once{Date: domain.Date{Year: 2024, Month: time.March, Day: 1}}, c.Schedule)
	})

	t.Run("unique without date is malformed", func(t *testing.T) {
		c, err := scanCampaign(campaignRow(domain.ModeUnique, nil, nil))
		require.NoError(t, err)
		assert.ErrorIs(t, c.Malformed, domain.ErrInvalidSchedule)
	})

	t.Run("unknown mode is malformed", func(t *testing.T) {
		c, err := scanCampaign(campaignRow("monthly", nil, nil))
		require.NoError(t, err)
		assert.ErrorIs(t, c.Malformed, domain.ErrUnknownSchedule)
		assert.Equal(t, "c1", c.ID)
	})

	t.Run("scan error", func(t *testing.T) {
		_, err := scanCampaign(fakeRow{err: errors.New("conn reset")})
		assert.EqualError(t, err, "conn reset")
	})
}
