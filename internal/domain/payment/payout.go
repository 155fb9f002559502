package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidPayoutStatus = errors.New("invalid payout status")

type PayoutStatus string

const (
	PayoutDraft    PayoutStatus = "draft"
	PayoutApproved PayoutStatus = "approved"
	PayoutPaid     PayoutStatus = "paid"
	PayoutFailed   PayoutStatus = "failed"
)

func (s PayoutStatus) String() string {
	return string(s)
}

func (s PayoutStatus) IsValid() bool {
	switch s {
	case PayoutDraft, PayoutApproved, PayoutPaid, PayoutFailed:
		return true
	default:
		return false
	}
}

// Payout is a disbursement to a supplier.
type Payout struct {
	id          uuid.UUID
	supplierID  uuid.UUID
	amountCents int64
	currency    string
	status      PayoutStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPayout(supplierID uuid.UUID, amountCents int64, currency string) (*Payout, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Payout{
		id:          uuid.New(),
		supplierID:  supplierID,
		amountCents: amountCents,
		currency:    currency,
		status:      PayoutDraft,
	}, nil
}

func ReconstructPayout(
	id, supplierID uuid.UUID,
	amountCents int64,
	currency string,
	status PayoutStatus,
	createdAt, updatedAt time.Time,
) *Payout {
	return &Payout{
		id:          id,
		supplierID:  supplierID,
		amountCents: amountCents,
		currency:    currency,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Payout) Approve() error {
	if p.status != PayoutDraft {
		return ErrInvalidTransition
	}
	p.status = PayoutApproved
	return nil
}

func (p *Payout) MarkPaid() error {
	if p.status != PayoutApproved {
		return ErrInvalidTransition
	}
	p.status = PayoutPaid
	return nil
}

func (p *Payout) MarkFailed() error {
	if p.status == PayoutPaid {
		return ErrInvalidTransition
	}
	p.status = PayoutFailed
	return nil
}

func (p *Payout) ID() uuid.UUID         { return p.id }
func (p *Payout) SupplierID() uuid.UUID { return p.supplierID }
func (p *Payout) AmountCents() int64    { return p.amountCents }
func (p *Payout) Currency() string      { return p.currency }
func (p *Payout) Status() PayoutStatus  { return p.status }
func (p *Payout) CreatedAt() time.Time  { return p.createdAt }
func (p *Payout) UpdatedAt() time.Time  { return p.updatedAt }
