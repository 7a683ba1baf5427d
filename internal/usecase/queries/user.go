package queries

import (
	"context"

	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/errs"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	users, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return users, nil
}
