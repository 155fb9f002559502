//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"carestay/internal/handler/api"
	reqdto "carestay/internal/handler/dto/request"
	resdto "carestay/internal/handler/dto/response"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase/commands"
	"carestay/tests/common/httptest"
	"carestay/tests/common/testutil"
	commandsmock "carestay/tests/mock/commands"
	queriesmock "carestay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.handler = api.NewAdminHandler(
		s.mockCommands,
		queriesmock.NewMockUserQueries(s.mockCtrl),
		queriesmock.NewMockDashboardQueries(s.mockCtrl),
	)

	s.router.POST("/admin/refunds", s.handler.CreateRefund)
	s.router.PATCH("/admin/suppliers/:id/qc", s.handler.UpdateSupplierQC)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestCreateRefund() {
	url := "/admin/refunds"
	reqBody := reqdto.CreateRefundRequest{
		PaymentID:   uuid.New(),
		AmountCents: 5000,
		Reason:      "double charge",
	}

	s.Run("success: returns 201 with the refund id", func() {
		refundID := uuid.New()
		s.mockCommands.EXPECT().CreateRefund(gomock.Any(), reqBody).
			Return(refundID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(refundID, response.ID)
	})

	s.Run("error: command failures map to the right status", func() {
		cases := []struct {
			name       string
			markErr    error
			expectCode int
			message    string
		}{
			{name: "unknown payment", markErr: commands.ErrPaymentNotFound, expectCode: http.StatusNotFound, message: "Payment not found"},
			{name: "payment not refundable", markErr: commands.ErrRefundNotAllowed, expectCode: http.StatusConflict, message: "Payment cannot be refunded"},
			{name: "amount over cap", markErr: commands.ErrRefundExceedsPayment, expectCode: http.StatusUnprocessableEntity, message: "Refund amount exceeds payment amount"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRefund(gomock.Any(), reqBody).
					Return(uuid.Nil, errs.Mark(errs.New("refund rejected"), tc.markErr)).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.message)
			})
		}
	})

	s.Run("validation: malformed bodies never reach the command", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing payment id", mutate: testutil.Field("payment_id", nil)},
			{name: "zero amount", mutate: testutil.Field("amount_cents", 0)},
			{name: "missing reason", mutate: testutil.Field("reason", nil)},
			{name: "empty reason", mutate: testutil.Field("reason", "")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestUpdateSupplierQC() {
	supplierID := uuid.New()
	url := "/admin/suppliers/" + supplierID.String() + "/qc"
	reqBody := reqdto.UpdateSupplierQCRequest{Status: "approved"}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().UpdateSupplierQC(gomock.Any(), supplierID, reqBody).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown supplier returns 404", func() {
		s.mockCommands.EXPECT().UpdateSupplierQC(gomock.Any(), supplierID, reqBody).
			Return(errs.Mark(errs.New("no supplier row"), commands.ErrSupplierNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Supplier not found")
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/suppliers/not-a-uuid/qc", reqBody, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid supplier ID format")
	})
}
