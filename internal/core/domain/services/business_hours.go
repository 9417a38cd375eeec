package services

import (
	"time"

	"orderintake/internal/pkg/errs"
)

// DefaultBusinessTimezone is the fixed business timezone used when the
// configuration does not name one.
const DefaultBusinessTimezone = "America/Argentina/Buenos_Aires"

// BusinessHours describes the shop's weekly opening window. When CloseHour is
// smaller than OpenHour the window crosses midnight (for example 18:00 to
// 03:00). ClosedDays are full days on which no orders are accepted.
type BusinessHours struct {
	OpenHour   int
	CloseHour  int
	ClosedDays []time.Weekday
	Location   *time.Location
}

// NewBusinessHours creates a window in the given timezone. An empty timezone
// name falls back to DefaultBusinessTimezone.
func NewBusinessHours(openHour, closeHour int, closedDays []time.Weekday, timezone string) (BusinessHours, error) {
	if openHour < 0 || openHour > 23 {
		return BusinessHours{}, errs.NewValueIsOutOfRangeError("openHour", openHour, 0, 23)
	}
	if closeHour < 0 || closeHour > 23 {
		return BusinessHours{}, errs.NewValueIsOutOfRangeError("closeHour", closeHour, 0, 23)
	}

	if timezone == "" {
		timezone = DefaultBusinessTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return BusinessHours{}, errs.NewValueIsInvalidErrorWithCause("timezone", err)
	}

	return BusinessHours{
		OpenHour:   openHour,
		CloseHour:  closeHour,
		ClosedDays: closedDays,
		Location:   loc,
	}, nil
}

// Evaluate checks whether orders are accepted at the given instant, converted
// into the business timezone. Closed days are rejected before the hour window
// is considered.
func (h BusinessHours) Evaluate(now time.Time) error {
	local := now.In(h.Location)
	hour := local.Hour()
	day := local.Weekday()

	for _, closed := range h.ClosedDays {
		if day == closed {
			return errs.NewBusinessRuleError("orders are not accepted on %s", day)
		}
	}

	var open bool
	if h.OpenHour < h.CloseHour {
		open = hour >= h.OpenHour && hour < h.CloseHour
	} else {
		// Window crosses midnight, e.g. 18:00 to 03:00.
		open = hour >= h.OpenHour || hour < h.CloseHour
	}

	if !open {
		return errs.NewBusinessRuleError("orders can only be placed between %02d:00 and %02d:00",
			h.OpenHour, h.CloseHour)
	}

	return nil
}
