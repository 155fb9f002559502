package readstore

import (
	"context"
	"time"

	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/pgconv"
	"carestay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReadStore serves the minimal lookups command handlers need for
// validation. Query-side listing lives in the other read stores.
type CommandReadStore struct{}

func NewCommandReadStore() *CommandReadStore {
	return &CommandReadStore{}
}

const supplierByIDSQL = `
SELECT id, owner_user_id, qc_status FROM supplier WHERE id = $1`

func (r *CommandReadStore) SupplierByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.SupplierSnapshot, error) {
	var s shared.SupplierSnapshot
	err := dbtx.QueryRow(ctx, supplierByIDSQL, id).Scan(&s.ID, &s.OwnerUserID, &s.QCStatus)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("supplier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find supplier by ID", err)
	}
	return &s, nil
}

const supplierByOwnerSQL = `
SELECT id, owner_user_id, qc_status FROM supplier WHERE owner_user_id = $1`

func (r *CommandReadStore) SupplierByOwner(ctx context.Context, dbtx db.DBTX, ownerUserID uuid.UUID) (*shared.SupplierSnapshot, error) {
	var s shared.SupplierSnapshot
	err := dbtx.QueryRow(ctx, supplierByOwnerSQL, ownerUserID).Scan(&s.ID, &s.OwnerUserID, &s.QCStatus)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("supplier not found for owner", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find supplier by owner", err)
	}
	return &s, nil
}

const nursingHomeByIDSQL = `
SELECT id, supplier_id, status FROM nursing_home WHERE id = $1`

func (r *CommandReadStore) NursingHomeByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.NursingHomeSnapshot, error) {
	var n shared.NursingHomeSnapshot
	err := dbtx.QueryRow(ctx, nursingHomeByIDSQL, id).Scan(&n.ID, &n.SupplierID, &n.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("nursing home not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find nursing home by ID", err)
	}
	return &n, nil
}

const roomTypeByIDSQL = `
SELECT id, nursing_home_id, capacity FROM room_type WHERE id = $1`

func (r *CommandReadStore) RoomTypeByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	var rt shared.RoomTypeSnapshot
	err := dbtx.QueryRow(ctx, roomTypeByIDSQL, id).Scan(&rt.ID, &rt.NursingHomeID, &rt.Capacity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}
	return &rt, nil
}

// Joins up the listing hierarchy so one lookup yields the supplier and
// nursing home the rate plan belongs to.
const ratePlanByIDSQL = `
SELECT rp.id, rp.room_type_id, nh.id, nh.supplier_id, rp.pricing_model
FROM rate_plan rp
JOIN room_type rt ON rt.id = rp.room_type_id
JOIN nursing_home nh ON nh.id = rt.nursing_home_id
WHERE rp.id = $1`

func (r *CommandReadStore) RatePlanByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.RatePlanSnapshot, error) {
	var rp shared.RatePlanSnapshot
	err := dbtx.QueryRow(ctx, ratePlanByIDSQL, id).Scan(&rp.ID, &rp.RoomTypeID, &rp.NursingHomeID, &rp.SupplierID, &rp.PricingModel)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rate plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rate plan by ID", err)
	}
	return &rp, nil
}

const calendarRangeSQL = `
SELECT day, price_cents, available
FROM price_calendar
WHERE rate_plan_id = $1 AND day >= $2 AND day < $3
ORDER BY day`

func (r *CommandReadStore) CalendarRange(ctx context.Context, dbtx db.DBTX, ratePlanID uuid.UUID, from, to time.Time) ([]shared.CalendarDaySnapshot, error) {
	rows, err := dbtx.Query(ctx, calendarRangeSQL, ratePlanID, pgconv.DateFromTime(from), pgconv.DateFromTime(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read calendar range", err)
	}
	defer rows.Close()

	var result []shared.CalendarDaySnapshot
	for rows.Next() {
		var (
			day  pgtype.Date
			snap shared.CalendarDaySnapshot
		)
		if err := rows.Scan(&day, &snap.PriceCents, &snap.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar day", err)
		}
		snap.Day = pgconv.TimeFromPgdate(day)
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read calendar range", err)
	}
	return result, nil
}

const bookingByIDSQL = `
SELECT id, user_id, supplier_id, nursing_home_id, status, total_amount_cents, currency
FROM booking WHERE id = $1`

func (r *CommandReadStore) BookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var b shared.BookingSnapshot
	err := dbtx.QueryRow(ctx, bookingByIDSQL, id).Scan(
		&b.ID, &b.UserID, &b.SupplierID, &b.NursingHomeID, &b.Status, &b.TotalCents, &b.Currency,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &b, nil
}

const paymentByIDSQL = `
SELECT id, booking_id, status, amount_cents, currency FROM payment WHERE id = $1`

func (r *CommandReadStore) PaymentByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	var p shared.PaymentSnapshot
	err := dbtx.QueryRow(ctx, paymentByIDSQL, id).Scan(&p.ID, &p.BookingID, &p.Status, &p.AmountCents, &p.Currency)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return &p, nil
}

const payoutByIDSQL = `
SELECT id, supplier_id, amount_cents, currency, status FROM payout WHERE id = $1`

func (r *CommandReadStore) PayoutByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.PayoutSnapshot, error) {
	var p shared.PayoutSnapshot
	err := dbtx.QueryRow(ctx, payoutByIDSQL, id).Scan(&p.ID, &p.SupplierID, &p.AmountCents, &p.Currency, &p.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payout not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payout by ID", err)
	}
	return &p, nil
}
