//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"padel-booking/internal/handler/dto/response"
	"padel-booking/tests/common/builder"
	"padel-booking/tests/common/dbtest"
	"padel-booking/tests/common/httptest"
	"padel-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	processURL  = "/api/reservation-process"
	validateURL = "/api/reservation-process/validate"
	cancelURL   = "/api/reservation-process/%d/cancel"
	payURL      = "/api/reservation-process/%d/pay"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) seed() (courtID, userID int64) {
	t := s.T()
	return dbtest.CreateTestCourt(t, s.DB, "Court 1", 2500), dbtest.CreateTestUser(t, s.DB, "Ana Perez")
}

// =============================================================================
// TestRegister - booking and overlap detection
// =============================================================================

func (s *ReservationSuite) TestRegister() {
	s.Run("Normal case: a free window is booked", func() {
		t := s.T()
		courtID, userID := s.seed()

		reqBody := builder.NewReservationBuilder().WithCourt(courtID).WithUser(userID).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, reqBody)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := response.ReservationResponse{
			Date:      "2025-12-06",
			StartTime: "18:00",
			EndTime:   "19:00",
			UserID:    userID,
			CourtID:   courtID,
			Status:    "booked",
		}
		if diff := cmp.Diff(expected, actual,
			cmpopts.IgnoreFields(response.ReservationResponse{}, "ID")); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Conflict: overlapping and touching windows are rejected", func() {
		t := s.T()
		courtID, userID := s.seed()
		dbtest.CreateTestReservation(t, s.DB, courtID, userID, "2025-12-06", "18:30", "19:30", "booked")

		for _, window := range [][2]string{{"18:00", "19:00"}, {"19:30", "20:30"}, {"17:00", "18:30"}, {"18:45", "19:15"}} {
			reqBody := builder.NewReservationBuilder().WithCourt(courtID).WithUser(userID).
				WithWindow(window[0], window[1]).BuildRequest()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, reqBody)
			httptest.AssertErrorResponse(t, w, http.StatusConflict, "already booked")
		}
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("Normal case: cancelled reservations free their window", func() {
		t := s.T()
		courtID, userID := s.seed()
		dbtest.CreateTestReservation(t, s.DB, courtID, userID, "2025-12-06", "18:00", "19:00", "cancelled")

		reqBody := builder.NewReservationBuilder().WithCourt(courtID).WithUser(userID).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, reqBody)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Normal case: another court or day is independent", func() {
		t := s.T()
		courtID, userID := s.seed()
		otherCourt := dbtest.CreateTestCourt(t, s.DB, "Court 2", 2500)
		dbtest.CreateTestReservation(t, s.DB, courtID, userID, "2025-12-06", "18:00", "19:00", "booked")

		for _, req := range []any{
			builder.NewReservationBuilder().WithCourt(otherCourt).WithUser(userID).BuildRequest(),
			builder.NewReservationBuilder().WithCourt(courtID).WithUser(userID).WithDate("2025-12-07").BuildRequest(),
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
	})

	s.Run("Error: unknown court is 404", func() {
		t := s.T()
		_, userID := s.seed()

		reqBody := builder.NewReservationBuilder().WithCourt(9999).WithUser(userID).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Concurrency: only one of many identical requests wins", func() {
		t := s.T()
		courtID, userID := s.seed()
		reqBody := builder.NewReservationBuilder().WithCourt(courtID).WithUser(userID).BuildRequest()

		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, reqBody).Code
			}()
		}
		wg.Wait()

		ok := 0
		for _, code := range codes {
			if code == http.StatusOK {
				ok++
			} else {
				require.Equal(t, http.StatusConflict, code)
			}
		}
		require.Equal(t, 1, ok)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})
}

// =============================================================================
// TestValidate - availability without side effects
// =============================================================================

func (s *ReservationSuite) TestValidate() {
	s.Run("Normal case: reports availability without booking", func() {
		t := s.T()
		courtID, userID := s.seed()
		dbtest.CreateTestReservation(t, s.DB, courtID, userID, "2025-12-06", "18:30", "19:30", "booked")

		cases := []struct {
			start, end string
			want       bool
		}{
			{"17:00", "18:00", true},
			{"19:00", "20:00", false},
			{"19:30", "20:30", false},
			{"20:00", "21:00", true},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, map[string]any{
				"courtId": courtID, "date": "2025-12-06", "startTime": tc.start, "endTime": tc.end,
			})
			var got bool
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
			require.Equal(t, tc.want, got, "%s-%s", tc.start, tc.end)
		}
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})
}

// =============================================================================
// TestLifecycle - cancel and pay transitions
// =============================================================================

func (s *ReservationSuite) TestLifecycle() {
	s.Run("Normal case: pay twice keeps a single payment", func() {
		t := s.T()
		courtID, userID := s.seed()
		id := dbtest.CreateTestReservation(t, s.DB, courtID, userID, "2025-12-06", "18:00", "19:00", "booked")

		first := httptest.PerformRawRequest(t, s.Router, http.MethodPut, fmt.Sprintf(payURL, id), `{"amount": 25}`)
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())
		second := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(payURL, id), nil)
		require.Equal(t, http.StatusOK, second.Code, second.Body.String())

		var a, b response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, first.Body, &a))
		require.NoError(t, httptest.DecodeResponseBody(t, second.Body, &b))
		require.Equal(t, "paid", b.Status)
		require.NotNil(t, b.PaymentID)
		require.Equal(t, *a.PaymentID, *b.PaymentID)
		require.Equal(t, "25.00", b.Amount.String())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments"))
	})

	s.Run("Error: a paid reservation cannot be cancelled", func() {
		t := s.T()
		courtID, userID := s.seed()
		id := dbtest.CreateTestReservation(t, s.DB, courtID, userID, "2025-12-06", "18:00", "19:00", "booked")

		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(payURL, id), nil).Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(cancelURL, id), nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Normal case: cancelling is idempotent and frees the court", func() {
		t := s.T()
		courtID, userID := s.seed()
		id := dbtest.CreateTestReservation(t, s.DB, courtID, userID, "2025-12-06", "18:00", "19:00", "booked")

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(cancelURL, id), nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, map[string]any{
			"courtId": courtID, "date": "2025-12-06", "startTime": "18:00", "endTime": "19:00",
		})
		var free bool
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &free)
		require.True(t, free)
	})
}
