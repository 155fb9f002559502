package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrRefundExceedsPayment = errors.New("refund amount exceeds payment amount")

type RefundStatus string

const (
	RefundPending   RefundStatus = "pending"
	RefundSucceeded RefundStatus = "succeeded"
	RefundFailed    RefundStatus = "failed"
)

func (s RefundStatus) String() string {
	return string(s)
}

// Refund is a refund against a payment. With enforceCap (the default) the
// amount may not exceed the parent payment amount.
type Refund struct {
	id          uuid.UUID
	paymentID   uuid.UUID
	amountCents int64
	reason      *string
	status      RefundStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRefund(parent *Payment, amountCents int64, reason *string, enforceCap bool) (*Refund, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if enforceCap && amountCents > parent.AmountCents() {
		return nil, ErrRefundExceedsPayment
	}
	return &Refund{
		id:          uuid.New(),
		paymentID:   parent.ID(),
		amountCents: amountCents,
		reason:      reason,
		status:      RefundPending,
	}, nil
}

func ReconstructRefund(
	id, paymentID uuid.UUID,
	amountCents int64,
	reason *string,
	status RefundStatus,
	createdAt, updatedAt time.Time,
) *Refund {
	return &Refund{
		id:          id,
		paymentID:   paymentID,
		amountCents: amountCents,
		reason:      reason,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Refund) ID() uuid.UUID        { return r.id }
func (r *Refund) PaymentID() uuid.UUID { return r.paymentID }
func (r *Refund) AmountCents() int64   { return r.amountCents }
func (r *Refund) Reason() *string      { return r.reason }
func (r *Refund) Status() RefundStatus { return r.status }
func (r *Refund) CreatedAt() time.Time { return r.createdAt }
func (r *Refund) UpdatedAt() time.Time { return r.updatedAt }
