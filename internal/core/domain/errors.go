package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSchedule  = errors.New("unknown schedule mode")
	ErrInvalidSchedule  = errors.New("invalid schedule")
	ErrUnknownWeekday   = errors.New("unknown weekday")
	ErrInvalidSendHour  = errors.New("send hour out of range")
	ErrUnknownAudience  = errors.New("unknown addressee mode")
	ErrCampaignNotFound = errors.New("campaign not found")
)

// DeliveryError reports a failed delivery attempt for a whole campaign.
// Partial batch rejections are reported the same way.
type DeliveryError struct {
	CampaignID string
	Err        error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver campaign %s: %v", e.CampaignID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
