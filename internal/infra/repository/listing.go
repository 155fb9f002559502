package repository

import (
	"context"

	"carestay/internal/domain/listing"
	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

const createNursingHomeSQL = `
INSERT INTO nursing_home (id, supplier_id, name, address, city, province, gps, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *ListingRepository) CreateNursingHome(ctx context.Context, dbtx db.DBTX, n *listing.NursingHome) error {
	_, err := dbtx.Exec(ctx, createNursingHomeSQL,
		n.ID(), n.SupplierID(), n.Name(), n.Address(), n.City(), n.Province(),
		pgconv.TextFromStringPtr(n.GPS()), n.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create nursing home", err)
	}
	return nil
}

const updateNursingHomeStatusSQL = `
UPDATE nursing_home SET status = $2, updated_at = now() WHERE id = $1`

func (r *ListingRepository) UpdateNursingHomeStatus(ctx context.Context, dbtx db.DBTX, nursingHomeID uuid.UUID, status listing.HomeStatus) error {
	tag, err := dbtx.Exec(ctx, updateNursingHomeStatusSQL, nursingHomeID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update nursing home status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("nursing home not found", nil, infra.KindNotFound)
	}
	return nil
}

const createRoomTypeSQL = `
INSERT INTO room_type (id, nursing_home_id, name, capacity, amenities, policy_ref)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *ListingRepository) CreateRoomType(ctx context.Context, dbtx db.DBTX, rt *listing.RoomType) error {
	_, err := dbtx.Exec(ctx, createRoomTypeSQL,
		rt.ID(), rt.NursingHomeID(), rt.Name(), rt.Capacity(),
		pgconv.TextFromStringPtr(rt.Amenities()),
		pgconv.TextFromStringPtr(rt.PolicyRef()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room type", err)
	}
	return nil
}

const createRatePlanSQL = `
INSERT INTO rate_plan (id, room_type_id, name, cancel_policy, meal_plan, pricing_model)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *ListingRepository) CreateRatePlan(ctx context.Context, dbtx db.DBTX, rp *listing.RatePlan) error {
	_, err := dbtx.Exec(ctx, createRatePlanSQL,
		rp.ID(), rp.RoomTypeID(), rp.Name(),
		pgconv.TextFromStringPtr(rp.CancelPolicy()),
		pgconv.TextFromStringPtr(rp.MealPlan()),
		rp.PricingModel().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rate plan", err)
	}
	return nil
}
