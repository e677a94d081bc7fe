package domain

import (
	"fmt"
	"time"
)

// IsDue decides whether c must fire at now given its most recent history
// entry (nil when the campaign was never attempted). It is pure.
//
// The checks run in order: the hour must match, nothing may have been
// recorded on now's calendar date, then the schedule variant decides. An
// error is returned, together with false, only for a campaign whose
// schedule cannot be interpreted. A send hour outside 0-23 never matches,
// so it is reported at most once per calendar date instead.
func IsDue(c Campaign, last *SendRecord, now time.Time) (bool, error) {
	blocked := last != nil && SameDate(now, last.SentAt)
	if c.SendHour < 0 || c.SendHour > 23 {
		if blocked {
			return false, nil
		}
		return false, fmt.Errorf("%w: campaign %s has send hour %d", ErrInvalidSendHour, c.ID, c.SendHour)
	}
	if now.Hour() != c.SendHour {
		return false, nil
	}
	if blocked {
		return false, nil
	}
	if c.Malformed != nil {
		return false, c.Malformed
	}

	switch s := c.Schedule.(type) {
	case Once:
		// A one-shot campaign never fires again once anything was recorded.
		return s.Date == DateOf(now) && last == nil, nil
	case Weekly:
		return s.Includes(now.Weekday()), nil
	case Daily:
		return true, nil
	default:
		return false, fmt.Errorf("%w: campaign %s has schedule %T", ErrUnknownSchedule, c.ID, c.Schedule)
	}
}
