package response

import (
	"time"

	"carestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingItemResponse struct {
	ID             uuid.UUID `json:"id"`
	RoomTypeID     uuid.UUID `json:"roomTypeId"`
	RatePlanID     uuid.UUID `json:"ratePlanId"`
	Nights         int32     `json:"nights"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	SubtotalCents  int64     `json:"subtotalCents"`
}

type BookingResponse struct {
	ID               uuid.UUID             `json:"id"`
	UserID           uuid.UUID             `json:"userId"`
	NursingHomeID    uuid.UUID             `json:"nursingHomeId"`
	NursingHomeName  string                `json:"nursingHomeName"`
	Status           string                `json:"status"`
	CheckIn          string                `json:"checkIn"`
	CheckOut         string                `json:"checkOut"`
	Guests           int32                 `json:"guests"`
	TotalAmountCents int64                 `json:"totalAmountCents"`
	Currency         string                `json:"currency"`
	CreatedAt        time.Time             `json:"createdAt"`
	Items            []BookingItemResponse `json:"items"`
}

type CreateBookingResponse struct {
	Booking   *BookingResponse `json:"booking"`
	PaymentID uuid.UUID        `json:"paymentId"`
}

type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	NextCursor *string           `json:"nextCursor,omitempty"`
}

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"bookingId"`
	Provider    string    `json:"provider"`
	ProviderRef *string   `json:"providerRef,omitempty"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, v)
	resp.CheckIn = v.CheckIn.Format(dayLayout)
	resp.CheckOut = v.CheckOut.Format(dayLayout)
	return resp
}

func FromBookingList(l *queries.BookingList) *BookingListResponse {
	bookings := make([]BookingResponse, len(l.Bookings))
	for i := range l.Bookings {
		bookings[i] = *FromBookingView(&l.Bookings[i])
	}
	return &BookingListResponse{Bookings: bookings, NextCursor: l.NextCursor}
}

func FromPaymentViews(vs []queries.PaymentView) []PaymentResponse {
	resps := make([]PaymentResponse, len(vs))
	_ = copier.Copy(&resps, vs)
	return resps
}
