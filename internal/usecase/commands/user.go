package commands

import (
	"context"

	"padel-booking/internal/domain/user"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/patch"
	"padel-booking/internal/usecase/shared"
)

type UserInput struct {
	Name  *string
	Email *string
	Phone *string
}

type UserCommands interface {
	Create(ctx context.Context, in UserInput) (int64, error)
	Update(ctx context.Context, id int64, in UserInput) error
	// Patch keeps nil fields and clears blank ones.
	Patch(ctx context.Context, id int64, in UserInput) error
	Delete(ctx context.Context, id int64) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (uc *userCommandsImpl) Create(ctx context.Context, in UserInput) (int64, error) {
	u, err := user.NewUser(in.Name, in.Email, in.Phone)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Users().Create(ctx, u)
		return createErr
	})
	if err != nil {
		return 0, translate(err, errs.ErrUserNotFound)
	}
	return id, nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, id int64, in UserInput) error {
	return uc.modify(ctx, id, func(u *user.User) error {
		return u.Update(in.Name, in.Email, in.Phone)
	})
}

func (uc *userCommandsImpl) Patch(ctx context.Context, id int64, in UserInput) error {
	return uc.modify(ctx, id, func(u *user.User) error {
		return u.Update(
			patch.CoalescePtr(in.Name, u.Name()),
			patch.CoalescePtr(in.Email, u.Email()),
			patch.CoalescePtr(in.Phone, u.Phone()),
		)
	})
}

func (uc *userCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, id)
	})
	return translateDelete(err, errs.ErrUserNotFound)
}

func (uc *userCommandsImpl) modify(ctx context.Context, id int64, change func(*user.User) error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, findErr := tx.Users().FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		if changeErr := change(u); changeErr != nil {
			return changeErr
		}
		return tx.Users().Update(ctx, u)
	})
	return translate(err, errs.ErrUserNotFound)
}
