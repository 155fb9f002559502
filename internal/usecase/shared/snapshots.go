package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type SupplierSnapshot struct {
	ID          uuid.UUID
	OwnerUserID uuid.UUID
	QCStatus    string
}

type NursingHomeSnapshot struct {
	ID         uuid.UUID
	SupplierID uuid.UUID
	Status     string
}

type RoomTypeSnapshot struct {
	ID            uuid.UUID
	NursingHomeID uuid.UUID
	Capacity      int32
}

// RatePlanSnapshot carries the full ancestry so the booking command can
// check supplier/nursing-home consistency without extra round trips.
type RatePlanSnapshot struct {
	ID            uuid.UUID
	RoomTypeID    uuid.UUID
	NursingHomeID uuid.UUID
	SupplierID    uuid.UUID
	PricingModel  string
}

type CalendarDaySnapshot struct {
	Day        time.Time
	PriceCents int64
	Available  int32
}

type BookingSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SupplierID    uuid.UUID
	NursingHomeID uuid.UUID
	Status        string
	TotalCents    int64
	Currency      string
}

type PaymentSnapshot struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	Status      string
	AmountCents int64
	Currency    string
}

type PayoutSnapshot struct {
	ID          uuid.UUID
	SupplierID  uuid.UUID
	AmountCents int64
	Currency    string
	Status      string
}
