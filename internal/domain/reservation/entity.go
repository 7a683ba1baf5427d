package reservation

import (
	"strconv"
	"time"

	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/errs"
)

var (
	ErrInvalidTimeRange    = errs.New("start time must not be after end time")
	ErrInvalidStatus       = errs.New("invalid reservation status")
	ErrMissingUser         = errs.New("reservation must reference a user")
	ErrMissingCourt        = errs.New("reservation must reference a court")
	ErrMissingDate         = errs.New("reservation date is required")
	ErrReservationCanceled = errs.New("reservation is cancelled")
	ErrAlreadyPaid         = errs.New("reservation is already paid")
)

type Reservation struct {
	id        int64
	userID    int64
	courtID   int64
	date      civil.Date
	window    TimeRange
	status    Status
	paymentID *int64
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(userID int64, slot Slot) (*Reservation, error) {
	switch {
	case userID <= 0:
		return nil, errs.Mark(ErrMissingUser, errs.ErrDomainValidation)
	case slot.CourtID <= 0:
		return nil, errs.Mark(ErrMissingCourt, errs.ErrDomainValidation)
	case slot.Date.IsZero():
		return nil, errs.Mark(ErrMissingDate, errs.ErrDomainValidation)
	}
	if err := slot.Window.Validate(); err != nil {
		return nil, err
	}

	return &Reservation{
		userID:  userID,
		courtID: slot.CourtID,
		date:    slot.Date,
		window:  slot.Window,
		status:  StatusBooked,
	}, nil
}

func ReconstructReservation(
	id, userID, courtID int64,
	date civil.Date,
	window TimeRange,
	status Status,
	paymentID *int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		courtID:   courtID,
		date:      date,
		window:    window,
		status:    status,
		paymentID: paymentID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel moves a booked reservation to cancelled. Cancelling twice is a no-op;
// a paid reservation cannot be cancelled since refunds are not modelled.
// The returned flag tells whether the status changed.
func (r *Reservation) Cancel() (bool, error) {
	switch r.status {
	case StatusCancelled:
		return false, nil
	case StatusPaid:
		return false, errs.Mark(ErrAlreadyPaid, errs.ErrInvalidTransition)
	}
	r.status = StatusCancelled
	return true, nil
}

// CanPay reports whether a payment may be attached now. A paid reservation
// returns false without error so that callers can treat repeat payments as no-ops.
func (r *Reservation) CanPay() (bool, error) {
	switch r.status {
	case StatusCancelled:
		return false, errs.Mark(ErrReservationCanceled, errs.ErrInvalidTransition)
	case StatusPaid:
		return false, nil
	}
	return true, nil
}

func (r *Reservation) MarkPaid(paymentID int64) error {
	if r.status == StatusCancelled {
		return errs.Mark(ErrReservationCanceled, errs.ErrInvalidTransition)
	}
	r.status = StatusPaid
	r.paymentID = &paymentID
	return nil
}

func (r *Reservation) Slot() Slot {
	return Slot{CourtID: r.courtID, Date: r.date, Window: r.window}
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) UserID() int64        { return r.userID }
func (r *Reservation) CourtID() int64       { return r.courtID }
func (r *Reservation) Date() civil.Date     { return r.date }
func (r *Reservation) Window() TimeRange    { return r.window }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) PaymentID() *int64    { return r.paymentID }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
