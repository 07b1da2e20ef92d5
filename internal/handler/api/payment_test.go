//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"seat-reservation/internal/handler/api"
	reqdto "seat-reservation/internal/handler/dto/request"
	resdto "seat-reservation/internal/handler/dto/response"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/commands"
	"seat-reservation/internal/usecase/queries"
	"seat-reservation/tests/common/httptest"
	commandsmock "seat-reservation/tests/mock/commands"
	queriesmock "seat-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/payments", s.handler.Submit)
	s.router.GET("/payments/:id", s.handler.Get)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func paymentView(bookingID uuid.UUID, status string) *queries.PaymentView {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &queries.PaymentView{
		ID:             uuid.New(),
		BookingID:      bookingID,
		IdempotencyKey: "key-1",
		Status:         status,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *PaymentHandlerTestSuite) TestSubmit() {
	reqBody := reqdto.SubmitPaymentRequest{BookingID: uuid.New()}

	s.Run("success: first attempt returns 200 without the replay header", func() {
		view := paymentView(reqBody.BookingID, "success")
		s.mockCommands.EXPECT().SubmitPayment(gomock.Any(), reqBody.BookingID, "key-1").
			Return(&commands.SubmitPaymentResult{Payment: view}, nil).Times(1)
		rec := httptest.PerformPayment(s.T(), s.router, reqBody, "key-1")

		var body resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("success", body.Status)
		s.Empty(rec.Header().Get(api.IdempotentReplayedHeader))
	})

	s.Run("success: replay returns the stored row with the replay header", func() {
		view := paymentView(reqBody.BookingID, "failed")
		s.mockCommands.EXPECT().SubmitPayment(gomock.Any(), reqBody.BookingID, "key-1").
			Return(&commands.SubmitPaymentResult{Payment: view, IsReplayed: true}, nil).Times(1)
		rec := httptest.PerformPayment(s.T(), s.router, reqBody, "key-1")

		var body resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("failed", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.IdempotentReplayedHeader: "true"})
	})

	s.Run("error: 502 Bad Gateway with retryable flag when declined", func() {
		view := paymentView(reqBody.BookingID, "failed")
		s.mockCommands.EXPECT().SubmitPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.SubmitPaymentResult{Payment: view}, errs.ErrPaymentFailed).Times(1)
		rec := httptest.PerformPayment(s.T(), s.router, reqBody, "key-1")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment failed")
		httptest.AssertRetryable(s.T(), rec, true)
	})

	s.Run("error: 400 Bad Request without Idempotency-Key", func() {
		s.mockCommands.EXPECT().SubmitPayment(gomock.Any(), gomock.Any(), "").
			Return(nil, errs.ErrMissingIdempotencyKey).Times(1)
		rec := httptest.PerformPayment(s.T(), s.router, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockCommands.EXPECT().SubmitPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformPayment(s.T(), s.router, reqBody, "key-2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request when booking_id is missing", func() {
		rec := httptest.PerformPayment(s.T(), s.router, map[string]any{}, "key-3")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *PaymentHandlerTestSuite) TestGet() {
	view := paymentView(uuid.New(), "pending")

	s.Run("success: returns the payment", func() {
		s.mockQueries.EXPECT().GetPaymentByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+view.ID.String(), nil, nil)

		var body resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("pending", body.Status)
		s.Equal(view.BookingID, body.BookingID)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetPaymentByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrPaymentNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+uuid.NewString(), nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})
}
