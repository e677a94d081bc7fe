package domain

import (
	"fmt"
	"strings"
	"time"
)

// Addressee modes as persisted by the admin surface.
const (
	AddresseeAll  = "all"
	AddresseeSome = "some"
)

// Campaign represents a newsletter definition. It is read-only to the
// dispatcher.
type Campaign struct {
	ID        string
	Title     string
	SendHour  int // 0-23 in the deployment's time zone
	Schedule  Schedule
	Audience  Audience
	Content   Content
	CreatedAt time.Time
	UpdatedAt time.Time

	// Malformed holds the decoding error when the stored row could not be
	// turned into a valid Schedule. Such campaigns are still listed so the
	// dispatcher can report them per campaign.
	Malformed error
}

// Audience selects who receives a campaign.
type Audience struct {
	Mode   string   // all, some
	Emails []string // only read when Mode is some
}

// Content is passed to delivery unmodified apart from the attachment links
// appended to the body.
type Content struct {
	Subject  string
	Body     string
	FileURLs []string
}

// HTMLBody renders Body followed by one link per attached file under label.
func (c Content) HTMLBody(label string) string {
	if len(c.FileURLs) == 0 {
		return c.Body
	}
	links := make([]string, 0, len(c.FileURLs))
	for _, u := range c.FileURLs {
		links = append(links, fmt.Sprintf(`<a href="%s">%s</a>`, u, u))
	}
	return fmt.Sprintf("%s<br/><p>%s</p>%s", c.Body, label, strings.Join(links, "<br/>"))
}

// Validate checks the invariants that cannot be expressed by the types.
func (c Campaign) Validate() error {
	if c.Malformed != nil {
		return c.Malformed
	}
	if c.SendHour < 0 || c.SendHour > 23 {
		return fmt.Errorf("%w: %d", ErrInvalidSendHour, c.SendHour)
	}
	if c.Schedule == nil {
		return ErrUnknownSchedule
	}
	switch c.Audience.Mode {
	case AddresseeAll, AddresseeSome:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAudience, c.Audience.Mode)
	}
	return nil
}
