package request

import (
	"time"

	"carestay/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingItemRequest struct {
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	RatePlanID uuid.UUID `json:"rate_plan_id" binding:"required"`
}

type CreateBookingRequest struct {
	NursingHomeID uuid.UUID            `json:"nursing_home_id" binding:"required"`
	CheckIn       string               `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut      string               `json:"check_out" binding:"required,datetime=2006-01-02"`
	Guests        int32                `json:"guests" binding:"required,gt=0"`
	Currency      string               `json:"currency" binding:"required,len=3"`
	Items         []BookingItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *CreateBookingRequest) ToStay() (booking.StayPeriod, error) {
	checkIn, err := time.Parse(dayLayout, r.CheckIn)
	if err != nil {
		return booking.StayPeriod{}, err
	}
	checkOut, err := time.Parse(dayLayout, r.CheckOut)
	if err != nil {
		return booking.StayPeriod{}, err
	}
	return booking.NewStayPeriod(checkIn, checkOut)
}

type ConfirmPaymentRequest struct {
	Succeeded   *bool   `json:"succeeded" binding:"required"`
	ProviderRef *string `json:"provider_ref,omitempty"`
}
