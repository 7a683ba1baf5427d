//go:build unit

package payment_test

import (
	"testing"
	"time"

	"padel-booking/internal/domain/payment"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	paidAt := time.Date(2025, 12, 6, 18, 5, 0, 0, time.UTC)

	p, err := payment.NewPayment(3, paidAt, money.MustFromCents(1250))
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ReservationID())
	assert.Equal(t, paidAt, p.PaidAt())
	assert.Equal(t, "12.50", p.Amount().String())
	assert.Zero(t, p.ID())

	_, err = payment.NewPayment(0, paidAt, money.Zero())
	assert.ErrorIs(t, err, payment.ErrMissingReservation)
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))

	_, err = payment.NewPayment(3, time.Time{}, money.Zero())
	assert.ErrorIs(t, err, payment.ErrMissingPaidAt)
}
