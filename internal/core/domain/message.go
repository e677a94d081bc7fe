package domain

import "fmt"

// Message is a fully rendered campaign delivery.
type Message struct {
	CampaignID  string      `json:"campaign_id"`
	FromAddress string      `json:"from_address"`
	FromName    string      `json:"from_name"`
	Subject     string      `json:"subject"`
	HTMLBody    string      `json:"html_body"`
	Recipients  []Recipient `json:"recipients"`

	// OccurrenceKey identifies the campaign occurrence (id + date) so a
	// provider or consumer can drop duplicates.
	OccurrenceKey string `json:"occurrence_key"`
}

// OccurrenceKey builds the deduplication key for campaignID on date.
func OccurrenceKey(campaignID string, date Date) string {
	return fmt.Sprintf("%s:%s", campaignID, date)
}

// DeliveryReceipt summarises an accepted delivery.
type DeliveryReceipt struct {
	Accepted    int    `json:"accepted"`
	ProviderRef string `json:"provider_ref,omitempty"`
}
