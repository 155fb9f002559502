package request

import (
	"time"

	"carestay/internal/domain/listing"

	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

type CreateNursingHomeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Address  string  `json:"address" binding:"required"`
	City     string  `json:"city" binding:"required"`
	Province string  `json:"province" binding:"required"`
	GPS      *string `json:"gps,omitempty"`
}

func (r *CreateNursingHomeRequest) ToDomain(supplierID uuid.UUID) (*listing.NursingHome, error) {
	return listing.NewNursingHome(supplierID, r.Name, r.Address, r.City, r.Province, r.GPS)
}

type UpdateHomeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft live paused"`
}

type CreateRoomTypeRequest struct {
	Name      string  `json:"name" binding:"required"`
	Capacity  int32   `json:"capacity" binding:"required,gt=0"`
	Amenities *string `json:"amenities,omitempty"`
	PolicyRef *string `json:"policy_ref,omitempty"`
}

func (r *CreateRoomTypeRequest) ToDomain(nursingHomeID uuid.UUID) (*listing.RoomType, error) {
	return listing.NewRoomType(nursingHomeID, r.Name, r.Capacity, r.Amenities, r.PolicyRef)
}

type CreateRatePlanRequest struct {
	Name         string  `json:"name" binding:"required"`
	PricingModel string  `json:"pricing_model" binding:"required,oneof=per_night package"`
	CancelPolicy *string `json:"cancel_policy,omitempty"`
	MealPlan     *string `json:"meal_plan,omitempty"`
}

func (r *CreateRatePlanRequest) ToDomain(roomTypeID uuid.UUID) (*listing.RatePlan, error) {
	model, err := listing.NewPricingModel(r.PricingModel)
	if err != nil {
		return nil, err
	}
	return listing.NewRatePlan(roomTypeID, r.Name, model, r.CancelPolicy, r.MealPlan)
}

type CalendarDayRequest struct {
	Day        string `json:"day" binding:"required,datetime=2006-01-02"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
	Available  int32  `json:"available" binding:"min=0"`
}

type UpsertCalendarRequest struct {
	Days []CalendarDayRequest `json:"days" binding:"required,min=1,dive"`
}

func (r *UpsertCalendarRequest) ToDomain() ([]listing.DayPrice, error) {
	days := make([]listing.DayPrice, 0, len(r.Days))
	for _, d := range r.Days {
		day, err := time.Parse(dayLayout, d.Day)
		if err != nil {
			return nil, err
		}
		dp, err := listing.NewDayPrice(day, d.PriceCents, d.Available)
		if err != nil {
			return nil, err
		}
		days = append(days, dp)
	}
	if err := listing.ValidateCalendarDays(days); err != nil {
		return nil, err
	}
	return days, nil
}
