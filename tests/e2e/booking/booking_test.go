//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	reqdto "carestay/internal/handler/dto/request"
	resdto "carestay/internal/handler/dto/response"
	"carestay/tests/common/dbtest"
	"carestay/tests/common/httptest"
	"carestay/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

const (
	testPassword = "supersecret1"
	nightlyPrice = int64(12000)
	stayNights   = 3
)

// catalog is a live nursing home with one room type, one rate plan and a
// priced calendar covering the stay, ready to be booked.
type catalog struct {
	supplierToken string
	customerToken string
	adminToken    string
	supplierID    uuid.UUID
	homeID        uuid.UUID
	roomTypeID    uuid.UUID
	ratePlanID    uuid.UUID
	checkIn       time.Time
	checkOut      time.Time
}

func (s *bookingSuite) registerAndLogin(t *testing.T, email, role string, legalName *string) string {
	t.Helper()

	reqBody := reqdto.RegisterRequest{
		Name:      "Test " + role,
		Email:     email,
		Password:  testPassword,
		Role:      role,
		LegalName: legalName,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", reqBody, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	loginBody := reqdto.LoginRequest{Email: email, Password: testPassword}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", loginBody, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginRes resdto.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &loginRes)
	return loginRes.AccessToken
}

func (s *bookingSuite) loginAdmin(t *testing.T) string {
	t.Helper()

	dbtest.CreateTestUser(t, s.DB, "admin@example.com", "admin")
	loginBody := reqdto.LoginRequest{Email: "admin@example.com", Password: "password123"}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", loginBody, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginRes resdto.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &loginRes)
	return loginRes.AccessToken
}

// buildCatalog walks the whole supplier onboarding path through the API:
// register, QC approval, listing creation, pricing and going live.
func (s *bookingSuite) buildCatalog(t *testing.T) *catalog {
	t.Helper()

	legalName := "Sunrise Care B.V."
	c := &catalog{
		supplierToken: s.registerAndLogin(t, "supplier@example.com", "supplier", &legalName),
		customerToken: s.registerAndLogin(t, "customer@example.com", "customer", nil),
		adminToken:    s.loginAdmin(t),
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/supplier/me", nil, c.supplierToken)
	var sup resdto.SupplierResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &sup)
	require.Equal(t, "pending", sup.QCStatus)
	c.supplierID = sup.ID

	homeBody := reqdto.CreateNursingHomeRequest{
		Name:     "Sunrise Care",
		Address:  "1 Harbor Street",
		City:     "Rotterdam",
		Province: "Zuid-Holland",
	}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/supplier/nursing-homes", homeBody, c.supplierToken)
	var home resdto.NursingHomeResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &home)
	require.Equal(t, "draft", home.Status)
	c.homeID = home.ID

	roomBody := reqdto.CreateRoomTypeRequest{Name: "Single Room", Capacity: 1}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost,
		fmt.Sprintf("/api/supplier/nursing-homes/%s/room-types", c.homeID), roomBody, c.supplierToken)
	var roomCreated resdto.CreatedResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &roomCreated)
	c.roomTypeID = roomCreated.ID

	planBody := reqdto.CreateRatePlanRequest{Name: "Standard", PricingModel: "per_night"}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost,
		fmt.Sprintf("/api/supplier/room-types/%s/rate-plans", c.roomTypeID), planBody, c.supplierToken)
	var planCreated resdto.CreatedResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &planCreated)
	c.ratePlanID = planCreated.ID

	c.checkIn = time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 30)
	c.checkOut = c.checkIn.AddDate(0, 0, stayNights)

	days := make([]reqdto.CalendarDayRequest, 0, stayNights)
	for day := c.checkIn; day.Before(c.checkOut); day = day.AddDate(0, 0, 1) {
		days = append(days, reqdto.CalendarDayRequest{
			Day:        day.Format("2006-01-02"),
			PriceCents: nightlyPrice,
			Available:  1,
		})
	}
	w = httptest.PerformRequest(t, s.Router, http.MethodPut,
		fmt.Sprintf("/api/supplier/rate-plans/%s/calendar", c.ratePlanID),
		reqdto.UpsertCalendarRequest{Days: days}, c.supplierToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// Going live is gated on quality control.
	statusBody := reqdto.UpdateHomeStatusRequest{Status: "live"}
	w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
		fmt.Sprintf("/api/supplier/nursing-homes/%s/status", c.homeID), statusBody, c.supplierToken)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "Supplier has not passed quality control")

	qcBody := reqdto.UpdateSupplierQCRequest{Status: "approved"}
	w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
		fmt.Sprintf("/api/admin/suppliers/%s/qc", c.supplierID), qcBody, c.adminToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
		fmt.Sprintf("/api/supplier/nursing-homes/%s/status", c.homeID), statusBody, c.supplierToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	return c
}

func (s *bookingSuite) createBookingRequest(c *catalog) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		NursingHomeID: c.homeID,
		CheckIn:       c.checkIn.Format("2006-01-02"),
		CheckOut:      c.checkOut.Format("2006-01-02"),
		Guests:        1,
		Currency:      "EUR",
		Items: []reqdto.BookingItemRequest{
			{RoomTypeID: c.roomTypeID, RatePlanID: c.ratePlanID},
		},
	}
}

func (s *bookingSuite) TestBookingLifecycle() {
	s.Run("a customer books a live home and the payment settles the booking", func() {
		t := s.T()
		c := s.buildCatalog(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/nursing-homes?city=Rotterdam", nil, "")
		var found []resdto.NursingHomeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &found)
		require.Len(t, found, 1)
		require.Equal(t, c.homeID, found[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.createBookingRequest(c), c.customerToken)
		var created resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotNil(t, created.Booking)
		require.Equal(t, "draft", created.Booking.Status)
		require.Equal(t, nightlyPrice*stayNights, created.Booking.TotalAmountCents)
		require.NotEqual(t, uuid.Nil, created.PaymentID)

		// Per-night availability is reserved, so the same stay cannot be booked twice.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.createBookingRequest(c), c.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No availability for the requested stay")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/bookings/%s/approve", created.Booking.ID), nil, c.supplierToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		succeeded := true
		providerRef := "ch_e2e_1"
		confirmBody := reqdto.ConfirmPaymentRequest{Succeeded: &succeeded, ProviderRef: &providerRef}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/payments/%s/confirm", created.PaymentID), confirmBody, c.customerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/bookings/%s", created.Booking.ID), nil, c.customerToken)
		var paid resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.Equal(t, "paid", paid.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/bookings/%s/payments", created.Booking.ID), nil, c.customerToken)
		var payments []resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &payments)
		require.Len(t, payments, 1)
		require.Equal(t, "succeeded", payments[0].Status)
		require.Equal(t, providerRef, *payments[0].ProviderRef)
	})

	s.Run("a failed payment moves the booking to failed", func() {
		t := s.T()
		c := s.buildCatalog(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.createBookingRequest(c), c.customerToken)
		var created resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		succeeded := false
		confirmBody := reqdto.ConfirmPaymentRequest{Succeeded: &succeeded}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/payments/%s/confirm", created.PaymentID), confirmBody, c.customerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/bookings/%s", created.Booking.ID), nil, c.customerToken)
		var failed resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &failed)
		require.Equal(t, "failed", failed.Status)
	})

	s.Run("a successful payment requires an approved booking", func() {
		t := s.T()
		c := s.buildCatalog(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.createBookingRequest(c), c.customerToken)
		var created resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		succeeded := true
		confirmBody := reqdto.ConfirmPaymentRequest{Succeeded: &succeeded}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/payments/%s/confirm", created.PaymentID), confirmBody, c.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Operation not allowed in the current state")
	})
}

func (s *bookingSuite) TestRoleBoundaries() {
	s.Run("suppliers cannot create bookings and customers cannot manage listings", func() {
		t := s.T()
		c := s.buildCatalog(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.createBookingRequest(c), c.supplierToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied. Required role(s): customer, admin")

		homeBody := reqdto.CreateNursingHomeRequest{
			Name:     "Rogue Home",
			Address:  "2 Side Street",
			City:     "Utrecht",
			Province: "Utrecht",
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/supplier/nursing-homes", homeBody, c.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied. Required role(s): supplier")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, c.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied. Required role(s): admin")
	})

	s.Run("a customer cannot read someone else's booking", func() {
		t := s.T()
		c := s.buildCatalog(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.createBookingRequest(c), c.customerToken)
		var created resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		otherToken := s.registerAndLogin(t, "other@example.com", "customer", nil)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/bookings/%s", created.Booking.ID), nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied.")

		// Admins see everything.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/bookings/%s", created.Booking.ID), nil, c.adminToken)
		var view resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, created.Booking.ID, view.ID)
	})
}
