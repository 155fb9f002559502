//go:build unit || e2e

package builder

import (
	"time"

	dombooking "carestay/internal/domain/booking"
	reqdto "carestay/internal/handler/dto/request"
	"carestay/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID        uuid.UUID
	SupplierID    uuid.UUID
	NursingHomeID uuid.UUID
	RoomTypeID    uuid.UUID
	RatePlanID    uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int32
	Currency      string
	UnitPrice     int64
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserID:        uuid.New(),
		SupplierID:    uuid.New(),
		NursingHomeID: uuid.New(),
		RoomTypeID:    uuid.New(),
		RatePlanID:    uuid.New(),
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 3),
		Guests:        1,
		Currency:      "EUR",
		UnitPrice:     12000,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildStay() (dombooking.StayPeriod, error) {
	return dombooking.NewStayPeriod(b.CheckIn, b.CheckOut)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	currency, err := dombooking.NewCurrency(b.Currency)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.UserID, b.SupplierID, b.NursingHomeID, stay, b.Guests, currency)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		NursingHomeID: b.NursingHomeID,
		CheckIn:       b.CheckIn.Format("2006-01-02"),
		CheckOut:      b.CheckOut.Format("2006-01-02"),
		Guests:        b.Guests,
		Currency:      b.Currency,
		Items: []reqdto.BookingItemRequest{
			{RoomTypeID: b.RoomTypeID, RatePlanID: b.RatePlanID},
		},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	nights := int32(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	subtotal := b.UnitPrice * int64(nights)
	return &queries.BookingView{
		ID:               uuid.New(),
		UserID:           b.UserID,
		SupplierID:       b.SupplierID,
		NursingHomeID:    b.NursingHomeID,
		NursingHomeName:  "Sunrise Care",
		Status:           "draft",
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		Guests:           b.Guests,
		TotalAmountCents: subtotal,
		Currency:         b.Currency,
		CreatedAt:        time.Now(),
		Items: []queries.BookingItemView{
			{
				ID:             uuid.New(),
				RoomTypeID:     b.RoomTypeID,
				RatePlanID:     b.RatePlanID,
				Nights:         nights,
				UnitPriceCents: b.UnitPrice,
				SubtotalCents:  subtotal,
			},
		},
	}
}
