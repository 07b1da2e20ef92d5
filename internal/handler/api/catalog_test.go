//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"seat-reservation/internal/handler/api"
	resdto "seat-reservation/internal/handler/dto/response"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/queries"
	"seat-reservation/tests/common/httptest"
	queriesmock "seat-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockEvents  *queriesmock.MockEventQueries
	mockSeats   *queriesmock.MockSeatQueries
	eventRoutes *api.EventHandler
	seatRoutes  *api.SeatHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockEvents = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.mockSeats = queriesmock.NewMockSeatQueries(s.mockCtrl)
	s.eventRoutes = api.NewEventHandler(s.mockEvents)
	s.seatRoutes = api.NewSeatHandler(s.mockSeats)

	s.router.GET("/events", s.eventRoutes.List)
	s.router.GET("/events/:id", s.eventRoutes.Get)
	s.router.GET("/seats", s.seatRoutes.List)
	s.router.GET("/seats/:id", s.seatRoutes.Get)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListEvents() {
	view := &queries.EventView{
		ID:             uuid.New(),
		Title:          "Spring Recital",
		EventDate:      time.Date(2025, 4, 1, 19, 0, 0, 0, time.UTC),
		TotalSeats:     100,
		AvailableSeats: 97,
		HeldSeats:      2,
		BookedSeats:    1,
	}

	s.Run("success: returns events with seat counts", func() {
		s.mockEvents.EXPECT().List(gomock.Any()).Return([]*queries.EventView{view}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events", nil, nil)

		var body []resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(int64(97), body[0].AvailableSeats)
		s.Equal(int64(2), body[0].HeldSeats)
	})

	s.Run("success: empty list is an array", func() {
		s.mockEvents.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *CatalogHandlerTestSuite) TestGetEvent() {
	s.Run("error: 404 Not Found", func() {
		s.mockEvents.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrEventNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+uuid.NewString(), nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/42", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *CatalogHandlerTestSuite) TestListSeats() {
	eventID := uuid.New()
	holdID := uuid.New()
	heldBy := "heidi@example.com"
	expires := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)

	views := []*queries.SeatView{
		{ID: uuid.New(), EventID: eventID, SeatNumber: 1, Status: "available"},
		{ID: uuid.New(), EventID: eventID, SeatNumber: 2, Status: "held", HoldID: &holdID, HeldBy: &heldBy, HoldExpiresAt: &expires},
	}

	s.Run("success: returns the seat map", func() {
		s.mockSeats.EXPECT().ListByEvent(gomock.Any(), eventID).Return(views, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/seats?event_id="+eventID.String(), nil, nil)

		var body []resdto.SeatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Nil(body[0].HoldID)
		s.Require().NotNil(body[1].HeldBy)
		s.Equal(heldBy, *body[1].HeldBy)
	})

	s.Run("error: 400 Bad Request without event_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/seats", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Equal(map[string]string{"EventID": "required"}, httptest.ValidationDetail(s.T(), rec))
	})

	s.Run("error: 400 Bad Request for a malformed event_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/seats?event_id=abc", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Equal(map[string]string{"EventID": "uuid"}, httptest.ValidationDetail(s.T(), rec))
	})
}

func (s *CatalogHandlerTestSuite) TestGetSeat() {
	s.Run("error: 404 Not Found", func() {
		s.mockSeats.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrSeatNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/seats/"+uuid.NewString(), nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Seat not found")
	})
}
