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

type SupplierHandler struct {
	cmds     commands.ListingCommands
	bookings queries.BookingQueries
	dash     queries.DashboardQueries
}

func NewSupplierHandler(cmds commands.ListingCommands, bookings queries.BookingQueries, dash queries.DashboardQueries) *SupplierHandler {
	return &SupplierHandler{cmds: cmds, bookings: bookings, dash: dash}
}

// @Summary Create nursing home
// @Description Create a draft nursing home under the caller's supplier
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateNursingHomeRequest true "Nursing home request"
// @Success 201 {object} resdto.NursingHomeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /supplier/nursing-homes [post]
func (h *SupplierHandler) CreateNursingHome(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	var req reqdto.CreateNursingHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	view, err := h.cmds.CreateNursingHome(c.Request.Context(), session.UserID, req)
	if err != nil {
		h.abortListingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromNursingHomeView(view))
}

// @Summary Change nursing home status
// @Description Move a nursing home between draft, live and paused
// @Tags supplier
// @Accept json
// @Security BearerAuth
// @Param id path string true "Nursing home ID"
// @Param request body reqdto.UpdateHomeStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /supplier/nursing-homes/{id}/status [patch]
func (h *SupplierHandler) UpdateHomeStatus(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid nursing home ID format")
		return
	}

	var req reqdto.UpdateHomeStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	if err := h.cmds.UpdateNursingHomeStatus(c.Request.Context(), session.UserID, id, req.Status); err != nil {
		h.abortListingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create room type
// @Description Add a room type to an owned nursing home
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Nursing home ID"
// @Param request body reqdto.CreateRoomTypeRequest true "Room type request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /supplier/nursing-homes/{id}/room-types [post]
func (h *SupplierHandler) CreateRoomType(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	nursingHomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid nursing home ID format")
		return
	}

	var req reqdto.CreateRoomTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	id, err := h.cmds.CreateRoomType(c.Request.Context(), session.UserID, nursingHomeID, req)
	if err != nil {
		h.abortListingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Create rate plan
// @Description Add a rate plan to an owned room type
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.CreateRatePlanRequest true "Rate plan request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /supplier/room-types/{id}/rate-plans [post]
func (h *SupplierHandler) CreateRatePlan(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid room type ID format")
		return
	}

	var req reqdto.CreateRatePlanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	id, err := h.cmds.CreateRatePlan(c.Request.Context(), session.UserID, roomTypeID, req)
	if err != nil {
		h.abortListingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Upsert price calendar
// @Description Insert or update priced days of an owned rate plan
// @Tags supplier
// @Accept json
// @Security BearerAuth
// @Param id path string true "Rate plan ID"
// @Param request body reqdto.UpsertCalendarRequest true "Calendar request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /supplier/rate-plans/{id}/calendar [put]
func (h *SupplierHandler) UpsertCalendar(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	ratePlanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid rate plan ID format")
		return
	}

	var req reqdto.UpsertCalendarRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	if err := h.cmds.UpsertCalendar(c.Request.Context(), session.UserID, ratePlanID, req); err != nil {
		h.abortListingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary My supplier profile
// @Description Get the supplier owned by the caller
// @Tags supplier
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SupplierResponse
// @Failure 404 {object} httperr.Response
// @Router /supplier/me [get]
func (h *SupplierHandler) MySupplier(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	view, err := h.dash.MySupplier(c.Request.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSupplierNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Supplier not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSupplierView(view))
}

// @Summary Supplier bookings
// @Description List bookings made against the caller's nursing homes
// @Tags supplier
// @Produce json
// @Security BearerAuth
// @Param after query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Router /supplier/bookings [get]
func (h *SupplierHandler) ListBookings(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	after, limit := listParams(c)
	list, err := h.bookings.ListForSupplier(c.Request.Context(), session.UserID, after, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSupplierNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Supplier not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(list))
}

// @Summary Supplier dashboard
// @Description Aggregate booking and revenue numbers for the caller's supplier
// @Tags supplier
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SupplierStatsResponse
// @Router /supplier/dashboard [get]
func (h *SupplierHandler) Dashboard(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	stats, err := h.dash.SupplierDashboard(c.Request.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSupplierNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Supplier not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSupplierStats(stats))
}

func (h *SupplierHandler) abortListingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSupplierNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Supplier not found")
	case errors.Is(err, commands.ErrNursingHomeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Nursing home not found")
	case errors.Is(err, commands.ErrRoomTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Room type not found")
	case errors.Is(err, commands.ErrRatePlanNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Rate plan not found")
	case errors.Is(err, commands.ErrNotOwner):
		httperr.Forbidden(c, err, "Access denied.")
	case errors.Is(err, commands.ErrSupplierNotApproved):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Supplier has not passed quality control")
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeBadRequest, "Invalid data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
	}
}
