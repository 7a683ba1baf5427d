//go:build unit

package reservation_test

import (
	"testing"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/money"
	"padel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestNewReservation(t *testing.T) {
	t.Run("defaults to booked without payment", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusBooked, r.Status())
		assert.Nil(t, r.PaymentID())
		assert.Zero(t, r.ID())
		assert.Equal(t, "2025-12-06", r.Date().String())
	})

	runCases(t, []testCase{
		{
			name:   "zero-length window is accepted",
			mutate: func(b *builder.ReservationBuilder) { b.WithWindow("18:00", "18:00") },
		},
		{
			name:   "end before start is rejected",
			mutate: func(b *builder.ReservationBuilder) { b.WithWindow("19:00", "18:00") },
			errIs:  reservation.ErrInvalidTimeRange,
		},
		{
			name:   "missing user",
			mutate: func(b *builder.ReservationBuilder) { b.WithUser(0) },
			errIs:  reservation.ErrMissingUser,
		},
		{
			name:   "missing court",
			mutate: func(b *builder.ReservationBuilder) { b.WithCourt(0) },
			errIs:  reservation.ErrMissingCourt,
		},
	})
}

func TestCancel(t *testing.T) {
	t.Run("booked becomes cancelled", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildStored()
		changed, err := r.Cancel()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsCancelled().BuildStored()
		changed, err := r.Cancel()
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("paid cannot be cancelled", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsPaid(9, money.Zero()).BuildStored()
		_, err := r.Cancel()
		assert.ErrorIs(t, err, reservation.ErrAlreadyPaid)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, reservation.StatusPaid, r.Status())
	})
}

func TestPay(t *testing.T) {
	t.Run("booked can be paid", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildStored()
		ok, err := r.CanPay()
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, r.MarkPaid(42))
		assert.Equal(t, reservation.StatusPaid, r.Status())
		require.NotNil(t, r.PaymentID())
		assert.Equal(t, int64(42), *r.PaymentID())
	})

	t.Run("paid reports no further payment without error", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsPaid(42, money.Zero()).BuildStored()
		ok, err := r.CanPay()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("cancelled cannot be paid", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsCancelled().BuildStored()
		_, err := r.CanPay()
		assert.ErrorIs(t, err, reservation.ErrReservationCanceled)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))

		err = r.MarkPaid(1)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Nil(t, r.PaymentID())
	})
}

func TestNewEvent(t *testing.T) {
	r := builder.NewReservationBuilder().WithID(5).AsPaid(8, money.Zero()).BuildStored()
	at := r.CreatedAt()

	ev := reservation.NewEvent(reservation.EventPaid, r, at)

	assert.Equal(t, reservation.EventPaid, ev.Type)
	assert.Equal(t, int64(5), ev.ReservationID)
	assert.Equal(t, "18:00", ev.StartTime)
	assert.Equal(t, "19:00", ev.EndTime)
	require.NotNil(t, ev.PaymentID)
	assert.Equal(t, int64(8), *ev.PaymentID)
	assert.NotEqual(t, reservation.NewEvent(reservation.EventPaid, r, at).ID, ev.ID)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			r, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}
