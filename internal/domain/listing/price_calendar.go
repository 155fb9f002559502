package listing

import (
	"errors"
	"time"
)

var (
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrNegativeAvailability = errors.New("availability cannot be negative")
	ErrDuplicateDay         = errors.New("duplicate calendar day")
)

// DayPrice is one price_calendar row: per-day price and remaining
// availability for a rate plan. (rate_plan_id, day) is unique.
type DayPrice struct {
	Day        time.Time
	PriceCents int64
	Available  int32
}

func NewDayPrice(day time.Time, priceCents int64, available int32) (DayPrice, error) {
	if priceCents < 0 {
		return DayPrice{}, ErrNegativePrice
	}
	if available < 0 {
		return DayPrice{}, ErrNegativeAvailability
	}
	return DayPrice{
		Day:        truncateToDay(day),
		PriceCents: priceCents,
		Available:  available,
	}, nil
}

// ValidateCalendarDays rejects duplicate days within one upsert batch so a
// single request cannot violate the (rate_plan_id, day) uniqueness.
func ValidateCalendarDays(days []DayPrice) error {
	seen := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		if _, dup := seen[d.Day]; dup {
			return ErrDuplicateDay
		}
		seen[d.Day] = struct{}{}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
