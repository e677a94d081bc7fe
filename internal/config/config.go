package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"newsletter-dispatch/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the operator HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Dispatch configures the dispatcher, its trigger and the sender.
	Dispatch configs.Dispatch `envPrefix:"DISPATCH_"`

	// Delivery selects the outbound provider.
	Delivery configs.Delivery `envPrefix:"DELIVERY_"`

	SMTP configs.SMTP `envPrefix:"SMTP_"`
	AMQP configs.AMQP `envPrefix:"AMQP_"`
}

// Load reads an optional .env file from the working directory and then the
// process environment into a Config. Variables already set in the process
// win over the file. The result is validated.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks constraints spanning several fields.
func (c Config) Validate() error {
	if err := c.Dispatch.Validate(); err != nil {
		return err
	}
	if err := c.Delivery.Validate(); err != nil {
		return err
	}
	switch c.Delivery.Driver {
	case configs.DeliverySMTP:
		if c.SMTP.Host == "" {
			return errors.New("SMTP_HOST is required for the smtp delivery driver")
		}
	case configs.DeliveryAMQP:
		if c.AMQP.URL == "" || c.AMQP.Queue == "" {
			return errors.New("AMQP_URL and AMQP_QUEUE are required for the amqp delivery driver")
		}
	}
	if c.Dispatch.RunOnce && c.Dispatch.RunOnStart {
		return errors.New("DISPATCH_RUN_ONCE and DISPATCH_RUN_ON_START are mutually exclusive")
	}
	return nil
}
