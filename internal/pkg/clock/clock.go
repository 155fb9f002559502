package clock

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Test use only.
type FixedClock struct {
	Instant time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{Instant: t}
}

func (c *FixedClock) Now() time.Time {
	return c.Instant
}
