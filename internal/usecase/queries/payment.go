package queries

import (
	"context"

	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/errs"
)

type PaymentReadStore interface {
	FindByID(ctx context.Context, id int64) (*PaymentView, error)
	List(ctx context.Context) ([]*PaymentView, error)
}

type PaymentQueries interface {
	GetByID(ctx context.Context, id int64) (*PaymentView, error)
	List(ctx context.Context) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id int64) (*PaymentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *paymentQueriesImpl) List(ctx context.Context) ([]*PaymentView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
