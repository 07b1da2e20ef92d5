//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"seat-reservation/internal/handler/api"
	reqdto "seat-reservation/internal/handler/dto/request"
	"seat-reservation/internal/handler/validation"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/commands"
	"seat-reservation/tests/common/httptest"
	"seat-reservation/tests/common/testutil"
	commandsmock "seat-reservation/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HoldHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHoldCommands
	handler      *api.HoldHandler
}

func (s *HoldHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHoldCommands(s.mockCtrl)
	s.handler = api.NewHoldHandler(s.mockCommands)

	s.router.POST("/holds", s.handler.Create)
}

func (s *HoldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHoldHandlerSuite(t *testing.T) {
	suite.Run(t, new(HoldHandlerTestSuite))
}

type testCaseHold struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
	expectRule map[string]string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *HoldHandlerTestSuite) TestCreate() {
	url := "/holds"

	reqBody := reqdto.CreateHoldRequest{SeatID: uuid.New(), UserEmail: "frank@example.com"}
	expectedResult := &commands.CreateHoldResult{
		HoldID:    uuid.New(),
		SeatID:    reqBody.SeatID,
		EventID:   uuid.New(),
		ExpiresAt: time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC),
	}

	invalid := []testCaseHold{
		{name: "missing field: seat_id (required)", mutate: testutil.Field("seat_id", nil), expectCode: http.StatusBadRequest, expectRule: map[string]string{"SeatID": "required"}},
		{name: "missing field: user_email (required)", mutate: testutil.Field("user_email", nil), expectCode: http.StatusBadRequest, expectRule: map[string]string{"UserEmail": "required"}},
		{name: "malformed email", mutate: testutil.Field("user_email", "frank-at-example"), expectCode: http.StatusBadRequest, expectRule: map[string]string{"UserEmail": "seatemail"}},
		{name: "malformed seat id", mutate: testutil.Field("seat_id", "seat-7"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the hold", func() {
		s.mockCommands.EXPECT().CreateHold(gomock.Any(), reqBody.SeatID, "frank@example.com").
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.HoldID.String(), body["hold_id"])
		s.Equal(reqBody.SeatID.String(), body["seat_id"])
		s.Equal("2025-03-01T12:10:00Z", body["expires_at"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range invalid {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				if tc.expectRule != nil {
					s.Equal(tc.expectRule, httptest.ValidationDetail(s.T(), rec))
				}
			})
		}
	})

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"seat already held", errs.ErrSeatUnavailable, http.StatusConflict, "Seat is not available"},
		{"unknown seat", errs.ErrSeatNotFound, http.StatusNotFound, "Seat not found"},
		{"storage failure", errs.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range domainErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateHold(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}
