package configs

import "fmt"

// Delivery drivers.
const (
	DeliverySMTP = "smtp"
	DeliveryAMQP = "amqp"
	DeliveryLog  = "log"
)

// Delivery selects the outbound provider and its throttle.
type Delivery struct {
	Driver string `env:"DRIVER" envDefault:"log"`
	// RatePerSecond limits provider calls. Zero disables throttling.
	RatePerSecond float64 `env:"RATE_PER_SECOND" envDefault:"0"`
	Burst         int     `env:"BURST" envDefault:"1"`
}

func (c Delivery) Validate() error {
	switch c.Driver {
	case DeliverySMTP, DeliveryAMQP, DeliveryLog:
	default:
		return fmt.Errorf("unknown delivery driver %q", c.Driver)
	}
	if c.RatePerSecond < 0 {
		return fmt.Errorf("delivery rate must not be negative, got %v", c.RatePerSecond)
	}
	if c.RatePerSecond > 0 && c.Burst < 1 {
		return fmt.Errorf("delivery burst must be positive when throttling, got %d", c.Burst)
	}
	return nil
}
