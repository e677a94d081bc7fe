package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter-dispatch/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.True(t, cfg.HTTP.Enabled)
	assert.Equal(t, configs.StorePostgres, cfg.Dispatch.Store)
	assert.Equal(t, "0 * * * *", cfg.Dispatch.Schedule)
	assert.Equal(t, 50*time.Minute, cfg.Dispatch.RunTimeout)
	assert.Equal(t, 4, cfg.Dispatch.Concurrency)
	assert.Equal(t, "Attachments:", cfg.Dispatch.AttachmentsLabel)
	assert.Equal(t, configs.DeliveryLog, cfg.Delivery.Driver)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DISPATCH_STORE", "memory")
	t.Setenv("DISPATCH_TIMEZONE", "UTC")
	t.Setenv("DISPATCH_CONCURRENCY", "8")
	t.Setenv("DELIVERY_DRIVER", "smtp")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, configs.StoreMemory, cfg.Dispatch.Store)
	assert.Equal(t, 8, cfg.Dispatch.Concurrency)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())

	loc, err := cfg.Dispatch.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Dispatch: configs.Dispatch{
				Store:       configs.StoreMemory,
				Timezone:    "UTC",
				RunTimeout:  time.Minute,
				Concurrency: 1,
				FromAddress: "news@example.com",
			},
			Delivery: configs.Delivery{Driver: configs.DeliveryLog},
			AMQP:     configs.AMQP{URL: "amqp://localhost", Queue: "q"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown store", mutate: func(c *Config) { c.Dispatch.Store = "redis" }, wantErr: "unknown dispatch store"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Dispatch.Concurrency = 0 }, wantErr: "concurrency"},
		{name: "bad timezone", mutate: func(c *Config) { c.Dispatch.Timezone = "Mars/Olympus" }, wantErr: "timezone"},
		{name: "bad from address", mutate: func(c *Config) { c.Dispatch.FromAddress = "not an address" }, wantErr: "from address"},
		{name: "unknown driver", mutate: func(c *Config) { c.Delivery.Driver = "sms" }, wantErr: "unknown delivery driver"},
		{name: "smtp without host", mutate: func(c *Config) { c.Delivery.Driver = configs.DeliverySMTP }, wantErr: "SMTP_HOST"},
		{name: "amqp without queue", mutate: func(c *Config) {
			c.Delivery.Driver = configs.DeliveryAMQP
			c.AMQP.Queue = ""
		}, wantErr: "AMQP_QUEUE"},
		{name: "throttle without burst", mutate: func(c *Config) { c.Delivery.RatePerSecond = 2 }, wantErr: "burst"},
		{name: "run once and on start", mutate: func(c *Config) {
			c.Dispatch.RunOnce = true
			c.Dispatch.RunOnStart = true
		}, wantErr: "mutually exclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
