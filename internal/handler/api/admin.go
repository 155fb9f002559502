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

type AdminHandler struct {
	cmds  commands.AdminCommands
	users queries.UserQueries
	dash  queries.DashboardQueries
}

func NewAdminHandler(cmds commands.AdminCommands, users queries.UserQueries, dash queries.DashboardQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, users: users, dash: dash}
}

// @Summary List users
// @Description List registered users, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param after query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.UserListResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	after, limit := listParams(c)
	list, err := h.users.ListUsers(c.Request.Context(), after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserList(list))
}

// @Summary Update supplier QC status
// @Description Move a supplier between pending, approved and rejected
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Param request body reqdto.UpdateSupplierQCRequest true "QC request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/suppliers/{id}/qc [patch]
func (h *AdminHandler) UpdateSupplierQC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid supplier ID format")
		return
	}

	var req reqdto.UpdateSupplierQCRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	if err := h.cmds.UpdateSupplierQC(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrSupplierNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Supplier not found")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeBadRequest, "Invalid QC status")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create refund
// @Description Refund a succeeded payment, capped at the paid amount
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRefundRequest true "Refund request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/refunds [post]
func (h *AdminHandler) CreateRefund(c *gin.Context) {
	var req reqdto.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	id, err := h.cmds.CreateRefund(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Payment not found")
		case errors.Is(err, commands.ErrRefundNotAllowed):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Payment cannot be refunded")
		case errors.Is(err, commands.ErrRefundExceedsPayment):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeBadRequest, "Refund amount exceeds payment amount")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Create payout
// @Description Open a draft payout for a supplier
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePayoutRequest true "Payout request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/payouts [post]
func (h *AdminHandler) CreatePayout(c *gin.Context) {
	var req reqdto.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	id, err := h.cmds.CreatePayout(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSupplierNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Supplier not found")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeBadRequest, "Invalid payout data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update payout status
// @Description Move a payout between draft, approved, paid and failed
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Payout ID"
// @Param request body reqdto.UpdatePayoutStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/payouts/{id}/status [patch]
func (h *AdminHandler) UpdatePayoutStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid payout ID format")
		return
	}

	var req reqdto.UpdatePayoutStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, httperr.CodeBadRequest, "Invalid request format")
		return
	}

	if err := h.cmds.UpdatePayoutStatus(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrPayoutNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Payout not found")
		case errors.Is(err, commands.ErrPayoutStateInvalid):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeConflict, "Payout state does not allow this transition")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List payouts
// @Description List payouts, optionally filtered by supplier
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param supplier_id query string false "Supplier filter"
// @Success 200 {array} resdto.PayoutResponse
// @Router /admin/payouts [get]
func (h *AdminHandler) ListPayouts(c *gin.Context) {
	var supplierID *uuid.UUID
	if raw := c.Query("supplier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid supplier ID format")
			return
		}
		supplierID = &id
	}

	views, err := h.dash.ListPayouts(c.Request.Context(), supplierID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayoutViews(views))
}

// @Summary Admin dashboard
// @Description Platform-wide user, supplier and revenue numbers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AdminStatsResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.Unauthorized(c, errNoSession)
		return
	}

	stats, err := h.dash.AdminDashboard(c.Request.Context(), session.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminStats(stats))
}

// @Summary Company settings
// @Description Platform-level company settings
// @Tags company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CompanySettingsResponse
// @Router /company/settings [get]
func (h *AdminHandler) CompanySettings(c *gin.Context) {
	view, err := h.dash.CompanySettings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompanySettings(view))
}

// @Summary Tax rates
// @Description Configured tax rates
// @Tags company
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TaxRateResponse
// @Router /company/tax-rates [get]
func (h *AdminHandler) TaxRates(c *gin.Context) {
	views, err := h.dash.TaxRates(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTaxRates(views))
}
