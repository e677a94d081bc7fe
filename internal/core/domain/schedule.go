package domain

import (
	"fmt"
	"slices"
	"time"
)

// Mode names as persisted by the admin surface.
const (
	ModeUnique   = "unique"
	ModeSomeDays = "some-days"
	ModeDaily    = "daily"
)

// Schedule is the recurrence rule of a campaign. The set of implementations
// is closed: Once, Weekly and Daily.
type Schedule interface {
	Mode() string
	schedule()
}

// Once fires a single time on Date.
type Once struct {
	Date Date
}

// Weekly fires on every listed weekday.
type Weekly struct {
	Days []time.Weekday
}

// Daily fires every day.
type Daily struct{}

func (Once) Mode() string   { return ModeUnique }
func (Weekly) Mode() string { return ModeSomeDays }
func (Daily) Mode() string  { return ModeDaily }

func (Once) schedule()   {}
func (Weekly) schedule() {}
func (Daily) schedule()  {}

// Includes reports whether d is one of the schedule's weekdays.
func (w Weekly) Includes(d time.Weekday) bool {
	return slices.Contains(w.Days, d)
}

// DayNames returns the weekday names in the persisted format.
func (w Weekly) DayNames() []string {
	names := make([]string, 0, len(w.Days))
	for _, d := range w.Days {
		names = append(names, WeekdayName(d))
	}
	return names
}

// NewSchedule builds the variant for mode from the raw persisted fields.
// sendDate is only read for ModeUnique and days only for ModeSomeDays.
func NewSchedule(mode string, sendDate *Date, days []string) (Schedule, error) {
	switch mode {
	case ModeUnique:
		if sendDate == nil || sendDate.IsZero() {
			return nil, fmt.Errorf("%w: %s requires a send date", ErrInvalidSchedule, mode)
		}
		return Once{Date: *sendDate}, nil
	case ModeSomeDays:
		if len(days) == 0 {
			return nil, fmt.Errorf("%w: %s requires at least one day", ErrInvalidSchedule, mode)
		}
		parsed := make([]time.Weekday, 0, len(days))
		for _, name := range days {
			d, err := ParseWeekday(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
			}
			if !slices.Contains(parsed, d) {
				parsed = append(parsed, d)
			}
		}
		return Weekly{Days: parsed}, nil
	case ModeDaily:
		return Daily{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchedule, mode)
	}
}
