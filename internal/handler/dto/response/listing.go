package response

import (
	"time"

	"carestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dayLayout = "2006-01-02"

type NursingHomeResponse struct {
	ID         uuid.UUID `json:"id"`
	SupplierID uuid.UUID `json:"supplierId"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	GPS        *string   `json:"gps,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type RoomTypeResponse struct {
	ID            uuid.UUID `json:"id"`
	NursingHomeID uuid.UUID `json:"nursingHomeId"`
	Name          string    `json:"name"`
	Capacity      int32     `json:"capacity"`
	Amenities     *string   `json:"amenities,omitempty"`
	PolicyRef     *string   `json:"policyRef,omitempty"`
}

type RatePlanResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomTypeID   uuid.UUID `json:"roomTypeId"`
	Name         string    `json:"name"`
	CancelPolicy *string   `json:"cancelPolicy,omitempty"`
	MealPlan     *string   `json:"mealPlan,omitempty"`
	PricingModel string    `json:"pricingModel"`
}

type CalendarDayResponse struct {
	Day        string `json:"day"`
	PriceCents int64  `json:"priceCents"`
	Available  int32  `json:"available"`
}

type NursingHomeDetailResponse struct {
	NursingHome *NursingHomeResponse `json:"nursingHome"`
	RoomTypes   []RoomTypeResponse   `json:"roomTypes"`
}

func FromNursingHomeView(v *queries.NursingHomeView) *NursingHomeResponse {
	var resp NursingHomeResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromNursingHomeViews(vs []queries.NursingHomeView) []NursingHomeResponse {
	resps := make([]NursingHomeResponse, len(vs))
	for i := range vs {
		resps[i] = *FromNursingHomeView(&vs[i])
	}
	return resps
}

func FromNursingHomeDetail(d *queries.NursingHomeDetail) *NursingHomeDetailResponse {
	roomTypes := make([]RoomTypeResponse, len(d.RoomTypes))
	_ = copier.Copy(&roomTypes, d.RoomTypes)
	return &NursingHomeDetailResponse{
		NursingHome: FromNursingHomeView(&d.NursingHome),
		RoomTypes:   roomTypes,
	}
}

func FromRatePlanViews(vs []queries.RatePlanView) []RatePlanResponse {
	resps := make([]RatePlanResponse, len(vs))
	_ = copier.Copy(&resps, vs)
	return resps
}

func FromCalendarDayViews(vs []queries.CalendarDayView) []CalendarDayResponse {
	resps := make([]CalendarDayResponse, len(vs))
	for i, v := range vs {
		resps[i] = CalendarDayResponse{
			Day:        v.Day.Format(dayLayout),
			PriceCents: v.PriceCents,
			Available:  v.Available,
		}
	}
	return resps
}
