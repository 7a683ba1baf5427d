package queries

import (
	"context"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/errs"
)

type ReservationReadStore interface {
	reservation.OverlapFinder
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
	// ValidateAvailability reports whether the window is free without booking it.
	// Unlike a booking, the bounds need not be ordered.
	ValidateAvailability(ctx context.Context, courtID int64, date, startTime, endTime string) (bool, error)
}

type reservationQueriesImpl struct {
	store   ReservationReadStore
	checker *reservation.AvailabilityChecker
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		store:   store,
		checker: reservation.NewAvailabilityChecker(store),
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ValidateAvailability(ctx context.Context, courtID int64, date, startTime, endTime string) (bool, error) {
	slot, err := reservation.ParseSlot(courtID, date, startTime, endTime)
	if err != nil {
		return false, err
	}
	ok, err := q.checker.IsAvailable(ctx, slot)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ok, nil
}
