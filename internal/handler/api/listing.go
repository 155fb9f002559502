package api

import (
	"errors"
	"net/http"
	"time"

	resdto "carestay/internal/handler/dto/response"
	"carestay/internal/handler/httperr"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

type ListingHandler struct {
	q queries.ListingQueries
}

func NewListingHandler(q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{q: q}
}

// @Summary Search nursing homes
// @Description List live nursing homes, optionally filtered by city
// @Tags listings
// @Produce json
// @Param city query string false "City filter"
// @Success 200 {array} resdto.NursingHomeResponse
// @Router /nursing-homes [get]
func (h *ListingHandler) Search(c *gin.Context) {
	views, err := h.q.Search(c.Request.Context(), c.Query("city"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromNursingHomeViews(views))
}

// @Summary Get nursing home
// @Description Get a nursing home with its room types
// @Tags listings
// @Produce json
// @Param id path string true "Nursing home ID"
// @Success 200 {object} resdto.NursingHomeDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /nursing-homes/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid nursing home ID format")
		return
	}

	detail, err := h.q.GetNursingHome(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNursingHomeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Nursing home not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromNursingHomeDetail(detail))
}

// @Summary List rate plans
// @Description List rate plans of a room type
// @Tags listings
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {array} resdto.RatePlanResponse
// @Failure 400 {object} httperr.Response
// @Router /room-types/{id}/rate-plans [get]
func (h *ListingHandler) ListRatePlans(c *gin.Context) {
	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid room type ID format")
		return
	}

	views, err := h.q.ListRatePlans(c.Request.Context(), roomTypeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatePlanViews(views))
}

// @Summary Get price calendar
// @Description List priced days of a rate plan inside a half-open [from, to) range
// @Tags listings
// @Produce json
// @Param id path string true "Rate plan ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end, exclusive (YYYY-MM-DD)"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Router /rate-plans/{id}/calendar [get]
func (h *ListingHandler) GetCalendar(c *gin.Context) {
	ratePlanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid rate plan ID format")
		return
	}

	from, to, err := parseDayRange(c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid date range")
		return
	}

	views, err := h.q.GetCalendar(c.Request.Context(), ratePlanID, from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarDayViews(views))
}

func parseDayRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse(dayLayout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid from date")
	}
	to, err := time.Parse(dayLayout, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid to date")
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, errs.New("to must be after from")
	}
	return from, to, nil
}
