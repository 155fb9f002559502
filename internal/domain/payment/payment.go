package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidProvider   = errors.New("provider must not be empty")
	ErrInvalidTransition = errors.New("invalid payment status transition")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSucceeded, StatusFailed:
		return true
	default:
		return false
	}
}

// Payment is one payment attempt against a booking.
type Payment struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	provider    string
	providerRef *string
	status      Status
	amountCents int64
	currency    string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPayment(bookingID uuid.UUID, provider string, amountCents int64, currency string) (*Payment, error) {
	if strings.TrimSpace(provider) == "" {
		return nil, ErrInvalidProvider
	}
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		provider:    provider,
		status:      StatusPending,
		amountCents: amountCents,
		currency:    currency,
	}, nil
}

func ReconstructPayment(
	id, bookingID uuid.UUID,
	provider string,
	providerRef *string,
	status Status,
	amountCents int64,
	currency string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		bookingID:   bookingID,
		provider:    provider,
		providerRef: providerRef,
		status:      status,
		amountCents: amountCents,
		currency:    currency,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Payment) Succeed(providerRef string) error {
	if p.status != StatusPending {
		return ErrInvalidTransition
	}
	p.status = StatusSucceeded
	p.providerRef = &providerRef
	return nil
}

func (p *Payment) Fail() error {
	if p.status != StatusPending {
		return ErrInvalidTransition
	}
	p.status = StatusFailed
	return nil
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) BookingID() uuid.UUID { return p.bookingID }
func (p *Payment) Provider() string     { return p.provider }
func (p *Payment) ProviderRef() *string { return p.providerRef }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) AmountCents() int64   { return p.amountCents }
func (p *Payment) Currency() string     { return p.currency }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }
