package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	KYCVerified   bool      `json:"kyc_verified"`
	IsActive      bool      `json:"is_active"`
}

// UserView represents read-optimized user data for admin listings
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// SupplierView represents read-optimized supplier data
type SupplierView struct {
	ID               uuid.UUID `json:"id"`
	OwnerUserID      uuid.UUID `json:"owner_user_id"`
	LegalName        string    `json:"legal_name"`
	TaxID            *string   `json:"tax_id,omitempty"`
	PayoutAccountRef *string   `json:"payout_account_ref,omitempty"`
	QCStatus         string    `json:"qc_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NursingHomeView represents read-optimized nursing home data
type NursingHomeView struct {
	ID         uuid.UUID `json:"id"`
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	GPS        *string   `json:"gps,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RoomTypeView represents read-optimized room type data
type RoomTypeView struct {
	ID            uuid.UUID `json:"id"`
	NursingHomeID uuid.UUID `json:"nursing_home_id"`
	Name          string    `json:"name"`
	Capacity      int32     `json:"capacity"`
	Amenities     *string   `json:"amenities,omitempty"`
	PolicyRef     *string   `json:"policy_ref,omitempty"`
}

// RatePlanView represents read-optimized rate plan data
type RatePlanView struct {
	ID           uuid.UUID `json:"id"`
	RoomTypeID   uuid.UUID `json:"room_type_id"`
	Name         string    `json:"name"`
	CancelPolicy *string   `json:"cancel_policy,omitempty"`
	MealPlan     *string   `json:"meal_plan,omitempty"`
	PricingModel string    `json:"pricing_model"`
}

// CalendarDayView represents one priced day of a rate plan
type CalendarDayView struct {
	Day        time.Time `json:"day"`
	PriceCents int64     `json:"price_cents"`
	Available  int32     `json:"available"`
}

// BookingItemView represents one room line of a booking
type BookingItemView struct {
	ID             uuid.UUID `json:"id"`
	RoomTypeID     uuid.UUID `json:"room_type_id"`
	RatePlanID     uuid.UUID `json:"rate_plan_id"`
	Nights         int32     `json:"nights"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	SubtotalCents  int64     `json:"subtotal_cents"`
}

// BookingView represents read-optimized booking data with its items
type BookingView struct {
	ID               uuid.UUID         `json:"id"`
	UserID           uuid.UUID         `json:"user_id"`
	SupplierID       uuid.UUID         `json:"supplier_id"`
	NursingHomeID    uuid.UUID         `json:"nursing_home_id"`
	NursingHomeName  string            `json:"nursing_home_name"`
	Status           string            `json:"status"`
	CheckIn          time.Time         `json:"check_in"`
	CheckOut         time.Time         `json:"check_out"`
	Guests           int32             `json:"guests"`
	TotalAmountCents int64             `json:"total_amount_cents"`
	Currency         string            `json:"currency"`
	CreatedAt        time.Time         `json:"created_at"`
	Items            []BookingItemView `json:"items"`
}

// PaymentView represents read-optimized payment data
type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	Provider    string    `json:"provider"`
	ProviderRef *string   `json:"provider_ref,omitempty"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}

// PayoutView represents read-optimized payout data
type PayoutView struct {
	ID          uuid.UUID `json:"id"`
	SupplierID  uuid.UUID `json:"supplier_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SupplierStatsView aggregates a supplier's dashboard numbers
type SupplierStatsView struct {
	TotalBookings     int64 `json:"total_bookings"`
	PaidBookings      int64 `json:"paid_bookings"`
	GrossRevenueCents int64 `json:"gross_revenue_cents"`
	LiveNursingHomes  int64 `json:"live_nursing_homes"`
}

// AdminStatsView aggregates platform-wide dashboard numbers
type AdminStatsView struct {
	TotalUsers        int64 `json:"total_users"`
	TotalSuppliers    int64 `json:"total_suppliers"`
	LiveNursingHomes  int64 `json:"live_nursing_homes"`
	TotalBookings     int64 `json:"total_bookings"`
	GrossRevenueCents int64 `json:"gross_revenue_cents"`
}

// CompanySettingsView represents platform-level settings
type CompanySettingsView struct {
	CompanyName  string `json:"company_name"`
	SupportEmail string `json:"support_email"`
	Currency     string `json:"currency"`
}

// TaxRateView represents one configured tax rate
type TaxRateView struct {
	Name        string  `json:"name"`
	RatePercent float64 `json:"rate_percent"`
}
