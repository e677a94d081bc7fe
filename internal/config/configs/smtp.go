package configs

import "time"

// SMTP configures the go-mail client used by the smtp delivery driver.
type SMTP struct {
	Host     string        `env:"HOST"`
	Port     int           `env:"PORT" envDefault:"587"`
	Username string        `env:"USERNAME"`
	Password string        `env:"PASSWORD"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// TLS selects mandatory STARTTLS. Disable only for local relays.
	TLS bool `env:"TLS" envDefault:"true"`
}
