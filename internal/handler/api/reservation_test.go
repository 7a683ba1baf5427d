//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"padel-booking/internal/handler/api"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"
	"padel-booking/tests/common/builder"
	"padel-booking/tests/common/httptest"
	"padel-booking/tests/common/testutil"
	commandsmock "padel-booking/tests/mock/commands"
	queriesmock "padel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/api/reservation-process")
	g.POST("", s.handler.Register)
	g.GET("", s.handler.List)
	g.POST("/validate", s.handler.Validate)
	g.GET("/:id", s.handler.Get)
	g.PUT("/:id/cancel", s.handler.Cancel)
	g.PUT("/:id/pay", s.handler.Pay)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *ReservationHandlerTestSuite) TestRegister() {
	url := "/api/reservation-process"

	reqBody := builder.NewReservationBuilder().BuildRequest()
	view := builder.NewReservationBuilder().WithID(7).BuildView()

	s.Run("success: returns 200 with the booked reservation", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterReservationInput{
			UserID: 1, CourtID: 1, Date: "2025-12-06", StartTime: "18:00", EndTime: "19:00",
		}).Return(int64(7), nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ID)
		s.Equal("booked", body.Status)
		s.Equal("18:00", body.StartTime)
		s.Nil(body.PaymentID)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []testCaseReservation{
			{name: "missing userId", mutate: testutil.Field("userId", nil), expectCode: http.StatusBadRequest},
			{name: "missing courtId", mutate: testutil.Field("courtId", nil), expectCode: http.StatusBadRequest},
			{name: "missing date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "empty startTime", mutate: testutil.Field("startTime", ""), expectCode: http.StatusBadRequest},
			{name: "negative courtId", mutate: testutil.Field("courtId", -1), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"overlapping window", errs.Mark(errors.New("overlap"), errs.ErrReservationConflict), http.StatusConflict, "already booked"},
			{"malformed date", errs.Mark(errors.New("parse"), errs.ErrInvalidFormat), http.StatusBadRequest, "Invalid date or time format"},
			{"reversed window", errs.Mark(errors.New("end before start"), errs.ErrDomainValidation), http.StatusBadRequest, "Validation failed"},
			{"unknown court", errs.Mark(errors.New("fk"), errs.ErrReferenceNotFound), http.StatusNotFound, "Referenced court or user not found"},
			{"database failure", errs.Mark(errors.New("conn reset"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.SetupTest()
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(int64(0), tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestValidate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestValidate() {
	url := "/api/reservation-process/validate"
	reqBody := map[string]any{"courtId": 1, "date": "2025-12-06", "startTime": "19:00", "endTime": "20:00"}

	s.Run("returns the availability as a bare boolean", func() {
		for _, available := range []bool{true, false} {
			s.SetupTest()
			s.mockQueries.EXPECT().ValidateAvailability(gomock.Any(), int64(1), "2025-12-06", "19:00", "20:00").
				Return(available, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

			var body bool
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(available, body)
		}
	})

	s.Run("error: 400 on malformed time", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().ValidateAvailability(gomock.Any(), int64(1), "2025-12-06", "7pm", "20:00").
			Return(false, errs.Mark(errors.New("bad time"), errs.ErrInvalidFormat))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("startTime", "7pm")))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date or time format")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: returns the cancelled reservation", func() {
		s.SetupTest()
		view := builder.NewReservationBuilder().WithID(3).AsCancelled().BuildView()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(3)).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(3)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservation-process/3/cancel", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 409 when already paid", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(3)).
			Return(errs.Mark(errors.New("paid"), errs.ErrInvalidTransition))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservation-process/3/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "state transition")
	})

	s.Run("error: 404 for unknown reservation", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(99)).Return(errs.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservation-process/99/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 for non-numeric id", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservation-process/abc/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestPay
// ================================================================================

func (s *ReservationHandlerTestSuite) TestPay() {
	url := "/api/reservation-process/5/pay"
	paid := builder.NewReservationBuilder().WithID(5).AsPaid(11, money.MustFromCents(2550)).BuildView()

	s.Run("success: empty body pays the default amount", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Pay(gomock.Any(), int64(5), (*money.Money)(nil)).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(paid, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paid", body.Status)
		s.Require().NotNil(body.PaymentID)
		s.Equal(int64(11), *body.PaymentID)
	})

	s.Run("success: amount accepts a JSON number", func() {
		s.SetupTest()
		amount := money.MustFromCents(2550)
		s.mockCommands.EXPECT().Pay(gomock.Any(), int64(5), &amount).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(paid, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, url, `{"amount": 25.50}`)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"amount":25.50`)
	})

	s.Run("error: 400 on malformed amount", func() {
		s.SetupTest()
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, url, `{"amount": "twelve"}`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when the amount overflows cents", func() {
		s.SetupTest()
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, url, `{"amount": 100000000000000000}`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 when cancelled", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Pay(gomock.Any(), int64(5), gomock.Any()).
			Return(errs.Mark(errors.New("cancelled"), errs.ErrInvalidTransition))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "state transition")
	})
}

// ================================================================================
// TestGetAndList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetAndList() {
	s.Run("get returns 404 for unknown id", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, errs.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservation-process/42", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("list preserves store order", func() {
		s.SetupTest()
		first := builder.NewReservationBuilder().WithID(1).BuildView()
		second := builder.NewReservationBuilder().WithID(2).WithWindow("19:00", "20:00").BuildView()
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.ReservationView{first, second}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservation-process", nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(int64(1), body[0].ID)
		s.Equal("19:00", body[1].StartTime)
	})

	s.Run("list of nothing is an empty array", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservation-process", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`[]`, rec.Body.String())
	})
}
