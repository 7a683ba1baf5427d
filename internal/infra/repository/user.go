package repository

import (
	"context"

	"padel-booking/internal/domain/user"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/repository/converter"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	row, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return row.ID, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return converter.UserFromRow(row), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	affected, err := r.queries.UpdateUser(ctx, r.db, converter.UserToUpdateParams(u))
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
