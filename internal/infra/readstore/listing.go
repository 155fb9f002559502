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

type ListingReadStore struct{}

func NewListingReadStore() *ListingReadStore {
	return &ListingReadStore{}
}

const nursingHomeColumns = `id, supplier_id, name, address, city, province, gps, status, created_at, updated_at`

const searchLiveHomesSQL = `
SELECT ` + nursingHomeColumns + `
FROM nursing_home
WHERE status = 'live' AND ($1 = '' OR city = $1)
ORDER BY name`

func (r *ListingReadStore) SearchLive(ctx context.Context, dbtx db.DBTX, city string) ([]queries.NursingHomeView, error) {
	rows, err := dbtx.Query(ctx, searchLiveHomesSQL, city)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search live nursing homes", err)
	}
	defer rows.Close()
	return scanNursingHomes(rows)
}

const nursingHomeByIDSQL2 = `
SELECT ` + nursingHomeColumns + `
FROM nursing_home WHERE id = $1`

func (r *ListingReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.NursingHomeView, error) {
	row := dbtx.QueryRow(ctx, nursingHomeByIDSQL2, id)
	v, err := scanNursingHome(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("nursing home not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find nursing home by ID", err)
	}
	return v, nil
}

const homesBySupplierSQL = `
SELECT ` + nursingHomeColumns + `
FROM nursing_home WHERE supplier_id = $1
ORDER BY created_at DESC`

func (r *ListingReadStore) FindBySupplier(ctx context.Context, dbtx db.DBTX, supplierID uuid.UUID) ([]queries.NursingHomeView, error) {
	rows, err := dbtx.Query(ctx, homesBySupplierSQL, supplierID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find nursing homes by supplier", err)
	}
	defer rows.Close()
	return scanNursingHomes(rows)
}

const roomTypesByHomeSQL = `
SELECT id, nursing_home_id, name, capacity, amenities, policy_ref
FROM room_type WHERE nursing_home_id = $1
ORDER BY name`

func (r *ListingReadStore) RoomTypesByHome(ctx context.Context, dbtx db.DBTX, nursingHomeID uuid.UUID) ([]queries.RoomTypeView, error) {
	rows, err := dbtx.Query(ctx, roomTypesByHomeSQL, nursingHomeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room types", err)
	}
	defer rows.Close()

	var result []queries.RoomTypeView
	for rows.Next() {
		var (
			v         queries.RoomTypeView
			amenities pgtype.Text
			policyRef pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.NursingHomeID, &v.Name, &v.Capacity, &amenities, &policyRef); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		v.Amenities = pgconv.StringPtrFromPgtype(amenities)
		v.PolicyRef = pgconv.StringPtrFromPgtype(policyRef)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find room types", err)
	}
	return result, nil
}

const ratePlansByRoomTypeSQL = `
SELECT id, room_type_id, name, cancel_policy, meal_plan, pricing_model
FROM rate_plan WHERE room_type_id = $1
ORDER BY name`

func (r *ListingReadStore) RatePlansByRoomType(ctx context.Context, dbtx db.DBTX, roomTypeID uuid.UUID) ([]queries.RatePlanView, error) {
	rows, err := dbtx.Query(ctx, ratePlansByRoomTypeSQL, roomTypeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rate plans", err)
	}
	defer rows.Close()

	var result []queries.RatePlanView
	for rows.Next() {
		var (
			v            queries.RatePlanView
			cancelPolicy pgtype.Text
			mealPlan     pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.RoomTypeID, &v.Name, &cancelPolicy, &mealPlan, &v.PricingModel); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate plan row", err)
		}
		v.CancelPolicy = pgconv.StringPtrFromPgtype(cancelPolicy)
		v.MealPlan = pgconv.StringPtrFromPgtype(mealPlan)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find rate plans", err)
	}
	return result, nil
}

const calendarRangeViewSQL = `
SELECT day, price_cents, available
FROM price_calendar
WHERE rate_plan_id = $1 AND day >= $2 AND day < $3
ORDER BY day`

func (r *ListingReadStore) CalendarRange(ctx context.Context, dbtx db.DBTX, ratePlanID uuid.UUID, from, to time.Time) ([]queries.CalendarDayView, error) {
	rows, err := dbtx.Query(ctx, calendarRangeViewSQL, ratePlanID, pgconv.DateFromTime(from), pgconv.DateFromTime(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read price calendar", err)
	}
	defer rows.Close()

	var result []queries.CalendarDayView
	for rows.Next() {
		var (
			day pgtype.Date
			v   queries.CalendarDayView
		)
		if err := rows.Scan(&day, &v.PriceCents, &v.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar row", err)
		}
		v.Day = pgconv.TimeFromPgdate(day)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read price calendar", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNursingHome(row rowScanner) (*queries.NursingHomeView, error) {
	var (
		v   queries.NursingHomeView
		gps pgtype.Text
	)
	err := row.Scan(
		&v.ID, &v.SupplierID, &v.Name, &v.Address, &v.City, &v.Province,
		&gps, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.GPS = pgconv.StringPtrFromPgtype(gps)
	return &v, nil
}

func scanNursingHomes(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]queries.NursingHomeView, error) {
	var result []queries.NursingHomeView
	for rows.Next() {
		v, err := scanNursingHome(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan nursing home row", err)
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read nursing homes", err)
	}
	return result, nil
}
