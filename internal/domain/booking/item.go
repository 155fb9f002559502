package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidNights    = errors.New("nights must be positive")
	ErrNegativeUnitCost = errors.New("unit price cannot be negative")
)

// Item is one booking line. Subtotal is always derived from
// unitPrice * nights at construction; callers cannot supply it.
type Item struct {
	id             uuid.UUID
	bookingID      uuid.UUID
	roomTypeID     uuid.UUID
	ratePlanID     uuid.UUID
	nights         int32
	unitPriceCents int64
	subtotalCents  int64
}

func NewItem(bookingID, roomTypeID, ratePlanID uuid.UUID, nights int32, unitPriceCents int64) (*Item, error) {
	if nights <= 0 {
		return nil, ErrInvalidNights
	}
	if unitPriceCents < 0 {
		return nil, ErrNegativeUnitCost
	}
	return &Item{
		id:             uuid.New(),
		bookingID:      bookingID,
		roomTypeID:     roomTypeID,
		ratePlanID:     ratePlanID,
		nights:         nights,
		unitPriceCents: unitPriceCents,
		subtotalCents:  unitPriceCents * int64(nights),
	}, nil
}

func ReconstructItem(id, bookingID, roomTypeID, ratePlanID uuid.UUID, nights int32, unitPriceCents, subtotalCents int64) *Item {
	return &Item{
		id:             id,
		bookingID:      bookingID,
		roomTypeID:     roomTypeID,
		ratePlanID:     ratePlanID,
		nights:         nights,
		unitPriceCents: unitPriceCents,
		subtotalCents:  subtotalCents,
	}
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) BookingID() uuid.UUID  { return i.bookingID }
func (i *Item) RoomTypeID() uuid.UUID { return i.roomTypeID }
func (i *Item) RatePlanID() uuid.UUID { return i.ratePlanID }
func (i *Item) Nights() int32         { return i.nights }
func (i *Item) UnitPriceCents() int64 { return i.unitPriceCents }
func (i *Item) SubtotalCents() int64  { return i.subtotalCents }
