package api

import (
	"errors"
	"net/http"

	reqdto "carestay/internal/handler/dto/request"
	resdto "carestay/internal/handler/dto/response"
	"carestay/internal/handler/httperr"
	"carestay/internal/handler/middleware"
	"carestay/internal/usecase/commands"
	"carestay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a booking, reserve availability for the stay and open a pending payment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), session.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNursingHomeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Nursing home not found")
		case errors.Is(err, commands.ErrRatePlanNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Rate plan not found")
		case errors.Is(err, commands.ErrNursingHomeNotLive):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Nursing home is not accepting bookings")
		case errors.Is(err, commands.ErrNoAvailability):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "No availability for the requested stay")
		case errors.Is(err, commands.ErrRatePlanMismatch):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeBadRequest, "Rate plan does not belong to the requested room")
		case errors.Is(err, commands.ErrPriceMissing):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeBadRequest, "Price calendar does not cover the stay")
		case errors.Is(err, commands.ErrNonUniformPricing):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeBadRequest, "Nightly price varies across the stay")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeBadRequest, "Invalid booking data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Booking:   resdto.FromBookingView(result.Booking),
		PaymentID: result.PaymentID,
	})
}

// @Summary Get booking
// @Description Get a booking by ID; owner, home supplier and admins only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid booking ID format")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), session.UserID, session.Role, id)
	if err != nil {
		h.abortBookingQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param after query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	after, limit := listParams(c)
	list, err := h.q.ListMine(c.Request.Context(), session.UserID, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(list))
}

// @Summary Approve booking
// @Description Move a draft booking to approved; home supplier and admins only
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid booking ID format")
		return
	}

	if err := h.cmds.ApproveBooking(c.Request.Context(), session.UserID, session.Role, id); err != nil {
		h.abortBookingCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm payment
// @Description Settle a pending payment; success marks the booking paid, failure marks it failed
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Settlement request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/{id}/confirm [post]
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid payment ID format")
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	if err := h.cmds.ConfirmPayment(c.Request.Context(), session.UserID, session.Role, id, req); err != nil {
		h.abortBookingCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List booking payments
// @Description List payments of a booking; owner, home supplier and admins only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/payments [get]
func (h *BookingHandler) ListPayments(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid booking ID format")
		return
	}

	views, err := h.q.ListPayments(c.Request.Context(), session.UserID, session.Role, id)
	if err != nil {
		h.abortBookingQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

func (h *BookingHandler) abortBookingQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Booking not found")
	case errors.Is(err, queries.ErrBookingAccessDenied):
		httperr.Forbidden(c, err, "Access denied.")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
	}
}

func (h *BookingHandler) abortBookingCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Booking not found")
	case errors.Is(err, commands.ErrPaymentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Payment not found")
	case errors.Is(err, commands.ErrBookingAccessDenied):
		httperr.Forbidden(c, err, "Access denied.")
	case errors.Is(err, commands.ErrBookingStateInvalid):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Operation not allowed in the current state")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
	}
}
