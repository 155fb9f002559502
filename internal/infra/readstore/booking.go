package readstore

import (
	"context"
	"time"

	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/pgconv"
	"carestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct{}

func NewBookingReadStore() *BookingReadStore {
	return &BookingReadStore{}
}

const bookingViewColumns = `
b.id, b.user_id, b.supplier_id, b.nursing_home_id, nh.name, b.status,
b.check_in, b.check_out, b.guests, b.total_amount_cents, b.currency, b.created_at`

const findBookingByIDSQL = `
SELECT ` + bookingViewColumns + `
FROM booking b
JOIN nursing_home nh ON nh.id = b.nursing_home_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	row := dbtx.QueryRow(ctx, findBookingByIDSQL, id)
	v, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	items, err := r.itemsByBooking(ctx, dbtx, id)
	if err != nil {
		return nil, err
	}
	v.Items = items
	return v, nil
}

const listBookingsByUserSQL = `
SELECT ` + bookingViewColumns + `
FROM booking b
JOIN nursing_home nh ON nh.id = b.nursing_home_id
WHERE b.user_id = $1 AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

func (r *BookingReadStore) ListByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, after time.Time, afterID uuid.UUID, limit int) ([]queries.BookingView, error) {
	rows, err := dbtx.Query(ctx, listBookingsByUserSQL, userID, after, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

const listBookingsBySupplierSQL = `
SELECT ` + bookingViewColumns + `
FROM booking b
JOIN nursing_home nh ON nh.id = b.nursing_home_id
WHERE b.supplier_id = $1 AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

func (r *BookingReadStore) ListBySupplier(ctx context.Context, dbtx db.DBTX, supplierID uuid.UUID, after time.Time, afterID uuid.UUID, limit int) ([]queries.BookingView, error) {
	rows, err := dbtx.Query(ctx, listBookingsBySupplierSQL, supplierID, after, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by supplier", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

const itemsByBookingSQL = `
SELECT id, room_type_id, rate_plan_id, nights, unit_price_cents, subtotal_cents
FROM booking_item WHERE booking_id = $1
ORDER BY id`

func (r *BookingReadStore) itemsByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]queries.BookingItemView, error) {
	rows, err := dbtx.Query(ctx, itemsByBookingSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read booking items", err)
	}
	defer rows.Close()

	var result []queries.BookingItemView
	for rows.Next() {
		var v queries.BookingItemView
		if err := rows.Scan(&v.ID, &v.RoomTypeID, &v.RatePlanID, &v.Nights, &v.UnitPriceCents, &v.SubtotalCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking item row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking items", err)
	}
	return result, nil
}

const paymentsByBookingSQL = `
SELECT id, booking_id, provider, provider_ref, status, amount_cents, currency, created_at
FROM payment WHERE booking_id = $1
ORDER BY created_at DESC`

func (r *BookingReadStore) PaymentsByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]queries.PaymentView, error) {
	rows, err := dbtx.Query(ctx, paymentsByBookingSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read payments", err)
	}
	defer rows.Close()

	var result []queries.PaymentView
	for rows.Next() {
		var (
			v           queries.PaymentView
			providerRef pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.BookingID, &v.Provider, &providerRef, &v.Status, &v.AmountCents, &v.Currency, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		v.ProviderRef = pgconv.StringPtrFromPgtype(providerRef)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payments", err)
	}
	return result, nil
}

func scanBooking(row rowScanner) (*queries.BookingView, error) {
	var (
		v        queries.BookingView
		checkIn  pgtype.Date
		checkOut pgtype.Date
	)
	err := row.Scan(
		&v.ID, &v.UserID, &v.SupplierID, &v.NursingHomeID, &v.NursingHomeName, &v.Status,
		&checkIn, &checkOut, &v.Guests, &v.TotalAmountCents, &v.Currency, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.CheckIn = pgconv.TimeFromPgdate(checkIn)
	v.CheckOut = pgconv.TimeFromPgdate(checkOut)
	return &v, nil
}

func scanBookings(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]queries.BookingView, error) {
	var result []queries.BookingView
	for rows.Next() {
		v, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return result, nil
}
