package repository

import (
	"context"

	"carestay/internal/domain/booking"
	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO booking (id, user_id, supplier_id, nursing_home_id, status, check_in, check_out, guests, total_amount_cents, currency)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const createBookingItemSQL = `
INSERT INTO booking_item (id, booking_id, room_type_id, rate_plan_id, nights, unit_price_cents, subtotal_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	period := b.Stay()
	_, err := dbtx.Exec(ctx, createBookingSQL,
		b.ID(), b.UserID(), b.SupplierID(), b.NursingHomeID(), b.Status().String(),
		pgconv.DateFromTime(period.CheckIn()), pgconv.DateFromTime(period.CheckOut()),
		b.Guests(), b.TotalCents(), b.Currency().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	for _, item := range b.Items() {
		_, err := dbtx.Exec(ctx, createBookingItemSQL,
			item.ID(), b.ID(), item.RoomTypeID(), item.RatePlanID(),
			item.Nights(), item.UnitPriceCents(), item.SubtotalCents(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create booking item", err)
		}
	}
	return nil
}

const updateBookingStatusSQL = `
UPDATE booking SET status = $2, updated_at = now() WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateBookingStatusSQL, bookingID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
