//go:build unit

package reservation_test

import (
	"context"
	"testing"
	"time"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/pkg/civil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryFinder applies the overlap rule to an in-memory list.
type memoryFinder struct {
	stored []*reservation.Reservation
}

func (f *memoryFinder) ExistsOverlapping(_ context.Context, courtID int64, date civil.Date, window reservation.TimeRange) (bool, error) {
	for _, r := range f.stored {
		if r.CourtID() == courtID && r.Date().Equal(date) && r.Status().BlocksCourt() && r.Window().Overlaps(window) {
			return true, nil
		}
	}
	return false, nil
}

func TestAvailabilityChecker(t *testing.T) {
	booked := mustStored(t, 1, "2025-12-06", "18:30", "19:30", reservation.StatusBooked)
	cancelled := mustStored(t, 2, "2025-12-06", "10:00", "11:00", reservation.StatusCancelled)
	checker := reservation.NewAvailabilityChecker(&memoryFinder{stored: []*reservation.Reservation{booked, cancelled}})

	tests := []struct {
		name    string
		courtID int64
		date    string
		start   string
		end     string
		want    bool
	}{
		{name: "overlapping window on same court", courtID: 1, date: "2025-12-06", start: "19:00", end: "20:00", want: false},
		{name: "same window on another court", courtID: 9, date: "2025-12-06", start: "19:00", end: "20:00", want: true},
		{name: "same window on another day", courtID: 1, date: "2025-12-07", start: "19:00", end: "20:00", want: true},
		{name: "window touching end bound", courtID: 1, date: "2025-12-06", start: "19:30", end: "20:30", want: false},
		{name: "cancelled reservation frees the court", courtID: 2, date: "2025-12-06", start: "10:00", end: "11:00", want: true},
		{name: "unordered window compares bounds as given", courtID: 1, date: "2025-12-06", start: "20:00", end: "19:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := reservation.ParseSlot(tt.courtID, tt.date, tt.start, tt.end)
			require.NoError(t, err)

			got, err := checker.IsAvailable(context.Background(), slot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func mustStored(t *testing.T, courtID int64, date, start, end string, status reservation.Status) *reservation.Reservation {
	t.Helper()
	slot, err := reservation.ParseSlot(courtID, date, start, end)
	require.NoError(t, err)
	return reservation.ReconstructReservation(courtID*10, 1, courtID, slot.Date, slot.Window, status, nil, time.Time{}, time.Time{})
}
