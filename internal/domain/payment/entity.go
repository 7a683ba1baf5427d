package payment

import (
	"time"

	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/money"
)

var (
	ErrMissingReservation = errs.New("payment must reference a reservation")
	ErrMissingPaidAt      = errs.New("payment date is required")
)

// Payment is the single charge attached to a reservation.
type Payment struct {
	id            int64
	reservationID int64
	paidAt        time.Time
	amount        money.Money
}

func NewPayment(reservationID int64, paidAt time.Time, amount money.Money) (*Payment, error) {
	if reservationID <= 0 {
		return nil, errs.Mark(ErrMissingReservation, errs.ErrDomainValidation)
	}
	if paidAt.IsZero() {
		return nil, errs.Mark(ErrMissingPaidAt, errs.ErrDomainValidation)
	}
	return &Payment{
		reservationID: reservationID,
		paidAt:        paidAt,
		amount:        amount,
	}, nil
}

func ReconstructPayment(id, reservationID int64, paidAt time.Time, amount money.Money) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		paidAt:        paidAt,
		amount:        amount,
	}
}

func (p *Payment) ID() int64            { return p.id }
func (p *Payment) ReservationID() int64 { return p.reservationID }
func (p *Payment) PaidAt() time.Time    { return p.paidAt }
func (p *Payment) Amount() money.Money  { return p.amount }
