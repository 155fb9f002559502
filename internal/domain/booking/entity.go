package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrNegativeTotal        = errors.New("total amount cannot be negative")
	ErrHomeSupplierMismatch = errors.New("nursing home does not belong to supplier")
)

// Booking is a reservation request. It references user, supplier and
// nursing home by id; the supplier/nursing-home pair is checked for
// consistency at creation time.
type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	supplierID    uuid.UUID
	nursingHomeID uuid.UUID
	status        Status
	stay          StayPeriod
	guests        int32
	totalCents    int64
	currency      Currency
	items         []*Item
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	userID, supplierID, nursingHomeID uuid.UUID,
	stay StayPeriod,
	guests int32,
	currency Currency,
) (*Booking, error) {
	if guests <= 0 {
		return nil, ErrInvalidGuests
	}
	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		supplierID:    supplierID,
		nursingHomeID: nursingHomeID,
		status:        StatusDraft,
		stay:          stay,
		guests:        guests,
		currency:      currency,
	}, nil
}

func ReconstructBooking(
	id, userID, supplierID, nursingHomeID uuid.UUID,
	status Status,
	stay StayPeriod,
	guests int32,
	totalCents int64,
	currency Currency,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		supplierID:    supplierID,
		nursingHomeID: nursingHomeID,
		status:        status,
		stay:          stay,
		guests:        guests,
		totalCents:    totalCents,
		currency:      currency,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// AddItem appends a line and keeps the stored total derived from items.
func (b *Booking) AddItem(item *Item) {
	b.items = append(b.items, item)
	b.totalCents += item.SubtotalCents()
}

func (b *Booking) Approve() error {
	if b.status != StatusDraft {
		return ErrInvalidTransition
	}
	b.status = StatusApproved
	return nil
}

func (b *Booking) MarkPaid() error {
	if b.status != StatusApproved {
		return ErrInvalidTransition
	}
	b.status = StatusPaid
	return nil
}

func (b *Booking) MarkFailed() error {
	if b.status == StatusPaid {
		return ErrInvalidTransition
	}
	b.status = StatusFailed
	return nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) SupplierID() uuid.UUID    { return b.supplierID }
func (b *Booking) NursingHomeID() uuid.UUID { return b.nursingHomeID }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Stay() StayPeriod         { return b.stay }
func (b *Booking) Guests() int32            { return b.guests }
func (b *Booking) TotalCents() int64        { return b.totalCents }
func (b *Booking) Currency() Currency       { return b.currency }
func (b *Booking) Items() []*Item           { return b.items }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
