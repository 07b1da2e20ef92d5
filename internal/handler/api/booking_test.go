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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := reqdto.CreateBookingRequest{HoldID: uuid.New()}
	expectedResult := &commands.CreateBookingResult{BookingID: uuid.New(), SeatID: uuid.New(), EventID: uuid.New()}

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody.HoldID).Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.BookingID, body.BookingID)
		s.Equal(expectedResult.SeatID, body.SeatID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/bookings/" + expectedResult.BookingID.String()})
	})

	s.Run("error: 400 Bad Request when hold_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Equal(map[string]string{"HoldID": "required"}, httptest.ValidationDetail(s.T(), rec))
	})

	s.Run("error: 400 Bad Request for an expired hold", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, errs.ErrInvalidOrExpiredHold).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or expired hold")
	})

	s.Run("error: 409 Conflict when the seat is no longer held", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, errs.ErrSeatNotHeld).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Seat is not held")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := &queries.BookingView{
		ID:         uuid.New(),
		SeatID:     uuid.New(),
		EventID:    uuid.New(),
		SeatNumber: 7,
		SeatStatus: "booked",
		UserEmail:  "grace@example.com",
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetBookingByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(int32(7), body.SeatNumber)
		s.Equal("booked", body.SeatStatus)
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetBookingByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+uuid.NewString(), nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
