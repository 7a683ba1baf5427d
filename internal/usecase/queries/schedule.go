package queries

import (
	"context"

	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/errs"
)

type ScheduleReadStore interface {
	FindByID(ctx context.Context, id int64) (*ScheduleView, error)
	List(ctx context.Context, courtID *int64) ([]*ScheduleView, error)
}

type ScheduleQueries interface {
	GetByID(ctx context.Context, id int64) (*ScheduleView, error)
	// List returns every schedule, or only those of courtID when it is set.
	List(ctx context.Context, courtID *int64) ([]*ScheduleView, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
}

func NewScheduleQueries(store ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{store: store}
}

func (q *scheduleQueriesImpl) GetByID(ctx context.Context, id int64) (*ScheduleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrScheduleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *scheduleQueriesImpl) List(ctx context.Context, courtID *int64) ([]*ScheduleView, error) {
	views, err := q.store.List(ctx, courtID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
