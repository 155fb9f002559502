package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidStayPeriod = errors.New("check-in must be before check-out")
	ErrInvalidGuests     = errors.New("guests must be positive")
	ErrInvalidCurrency   = errors.New("invalid currency code")
)

// StayPeriod is a half-open [checkIn, checkOut) date range.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int32 {
	return int32(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Days lists every night of the stay, check-out day excluded.
func (p StayPeriod) Days() []time.Time {
	days := make([]time.Time, 0, p.Nights())
	for d := p.checkIn; d.Before(p.checkOut); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

type Currency string

func NewCurrency(s string) (Currency, error) {
	if len(s) != 3 {
		return "", ErrInvalidCurrency
	}
	return Currency(s), nil
}

func (c Currency) String() string {
	return string(c)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
