package readstore

import (
	"context"

	"padel-booking/internal/infra"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Name:      pgconv.StringPtrFromPgtype(row.Name),
		Email:     pgconv.StringPtrFromPgtype(row.Email),
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
