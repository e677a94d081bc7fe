package configs

import (
	"fmt"
	"net/mail"
	"time"
)

// Store drivers.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Dispatch configures the dispatcher and its trigger.
type Dispatch struct {
	Store string `env:"STORE" envDefault:"postgres"`

	// Schedule is a standard five-field cron spec evaluated in Timezone.
	Schedule string `env:"SCHEDULE" envDefault:"0 * * * *"`
	// Timezone is the IANA zone that send hours and dates are read in.
	// "Local" uses the host zone.
	Timezone string `env:"TIMEZONE" envDefault:"Local"`
	// RunTimeout bounds a single run. It must stay below the trigger period.
	RunTimeout  time.Duration `env:"RUN_TIMEOUT" envDefault:"50m"`
	Concurrency int           `env:"CONCURRENCY" envDefault:"4"`
	RunOnStart  bool          `env:"RUN_ON_START" envDefault:"false"`
	RunOnce     bool          `env:"RUN_ONCE" envDefault:"false"`

	FromAddress      string `env:"FROM_ADDRESS" envDefault:"newsletter@example.com"`
	FromName         string `env:"FROM_NAME" envDefault:"Newsletter"`
	AttachmentsLabel string `env:"ATTACHMENTS_LABEL" envDefault:"Attachments:"`
}

// Location resolves Timezone.
func (c Dispatch) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("dispatch timezone: %w", err)
	}
	return loc, nil
}

// Validate checks the dispatch section on its own.
func (c Dispatch) Validate() error {
	switch c.Store {
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("unknown dispatch store %q", c.Store)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("dispatch concurrency must be positive, got %d", c.Concurrency)
	}
	if c.RunTimeout <= 0 {
		return fmt.Errorf("dispatch run timeout must be positive, got %s", c.RunTimeout)
	}
	if _, err := mail.ParseAddress(c.FromAddress); err != nil {
		return fmt.Errorf("dispatch from address: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
