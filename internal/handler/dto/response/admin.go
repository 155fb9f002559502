package response

import (
	"time"

	"carestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SupplierResponse struct {
	ID               uuid.UUID `json:"id"`
	OwnerUserID      uuid.UUID `json:"ownerUserId"`
	LegalName        string    `json:"legalName"`
	TaxID            *string   `json:"taxId,omitempty"`
	PayoutAccountRef *string   `json:"payoutAccountRef,omitempty"`
	QCStatus         string    `json:"qcStatus"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type UserListItemResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type UserListResponse struct {
	Users      []UserListItemResponse `json:"users"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

type PayoutResponse struct {
	ID          uuid.UUID `json:"id"`
	SupplierID  uuid.UUID `json:"supplierId"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SupplierStatsResponse struct {
	TotalBookings     int64 `json:"totalBookings"`
	PaidBookings      int64 `json:"paidBookings"`
	GrossRevenueCents int64 `json:"grossRevenueCents"`
	LiveNursingHomes  int64 `json:"liveNursingHomes"`
}

type AdminStatsResponse struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalSuppliers    int64 `json:"totalSuppliers"`
	LiveNursingHomes  int64 `json:"liveNursingHomes"`
	TotalBookings     int64 `json:"totalBookings"`
	GrossRevenueCents int64 `json:"grossRevenueCents"`
}

type CompanySettingsResponse struct {
	CompanyName  string `json:"companyName"`
	SupportEmail string `json:"supportEmail"`
	Currency     string `json:"currency"`
}

type TaxRateResponse struct {
	Name        string  `json:"name"`
	RatePercent float64 `json:"ratePercent"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromSupplierView(v *queries.SupplierView) *SupplierResponse {
	var resp SupplierResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromUserList(l *queries.UserList) *UserListResponse {
	users := make([]UserListItemResponse, len(l.Users))
	_ = copier.Copy(&users, l.Users)
	return &UserListResponse{Users: users, NextCursor: l.NextCursor}
}

func FromPayoutViews(vs []queries.PayoutView) []PayoutResponse {
	resps := make([]PayoutResponse, len(vs))
	_ = copier.Copy(&resps, vs)
	return resps
}

func FromSupplierStats(v *queries.SupplierStatsView) *SupplierStatsResponse {
	var resp SupplierStatsResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromAdminStats(v *queries.AdminStatsView) *AdminStatsResponse {
	var resp AdminStatsResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCompanySettings(v *queries.CompanySettingsView) *CompanySettingsResponse {
	var resp CompanySettingsResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromTaxRates(vs []queries.TaxRateView) []TaxRateResponse {
	resps := make([]TaxRateResponse, len(vs))
	_ = copier.Copy(&resps, vs)
	return resps
}
