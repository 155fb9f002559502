package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlanName     = errors.New("rate plan name must not be empty")
	ErrInvalidPricingModel = errors.New("invalid pricing model")
)

type PricingModel string

const (
	PricePerNight PricingModel = "per_night"
	PricePackage  PricingModel = "package"
)

func (m PricingModel) String() string {
	return string(m)
}

func (m PricingModel) IsValid() bool {
	switch m {
	case PricePerNight, PricePackage:
		return true
	default:
		return false
	}
}

func NewPricingModel(s string) (PricingModel, error) {
	model := PricingModel(s)
	if !model.IsValid() {
		return "", ErrInvalidPricingModel
	}
	return model, nil
}

// RatePlan is a pricing/cancellation policy attached to a room type.
type RatePlan struct {
	id           uuid.UUID
	roomTypeID   uuid.UUID
	name         string
	cancelPolicy *string
	mealPlan     *string
	pricingModel PricingModel
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRatePlan(roomTypeID uuid.UUID, name string, pricingModel PricingModel, cancelPolicy, mealPlan *string) (*RatePlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidPlanName
	}
	if !pricingModel.IsValid() {
		return nil, ErrInvalidPricingModel
	}
	return &RatePlan{
		id:           uuid.New(),
		roomTypeID:   roomTypeID,
		name:         name,
		cancelPolicy: cancelPolicy,
		mealPlan:     mealPlan,
		pricingModel: pricingModel,
	}, nil
}

func ReconstructRatePlan(
	id, roomTypeID uuid.UUID,
	name string,
	cancelPolicy, mealPlan *string,
	pricingModel PricingModel,
	createdAt, updatedAt time.Time,
) *RatePlan {
	return &RatePlan{
		id:           id,
		roomTypeID:   roomTypeID,
		name:         name,
		cancelPolicy: cancelPolicy,
		mealPlan:     mealPlan,
		pricingModel: pricingModel,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *RatePlan) ID() uuid.UUID              { return r.id }
func (r *RatePlan) RoomTypeID() uuid.UUID      { return r.roomTypeID }
func (r *RatePlan) Name() string               { return r.name }
func (r *RatePlan) CancelPolicy() *string      { return r.cancelPolicy }
func (r *RatePlan) MealPlan() *string          { return r.mealPlan }
func (r *RatePlan) PricingModel() PricingModel { return r.pricingModel }
func (r *RatePlan) CreatedAt() time.Time       { return r.createdAt }
func (r *RatePlan) UpdatedAt() time.Time       { return r.updatedAt }
