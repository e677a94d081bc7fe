package domain

import "time"

// Subscriber statuses. Only active subscribers receive campaigns.
const (
	SubscriberActive   = "active"
	SubscriberInactive = "inactive"
)

// Subscriber is a newsletter recipient.
type Subscriber struct {
	ID           string
	Email        string
	Name         string
	BusinessName string
	Status       string
	CreatedAt    time.Time
}

// Recipient is the address pair handed to delivery.
type Recipient struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// Recipient converts s into a delivery recipient.
func (s Subscriber) Recipient() Recipient {
	return Recipient{Address: s.Email, Name: s.Name}
}
