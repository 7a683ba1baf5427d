package commands

import (
	"context"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/pkg/patch"
	"padel-booking/internal/usecase/shared"
)

type CourtInput struct {
	Name  string
	Type  *string
	Price money.Money
}

// CourtPatch carries only the fields to change; nil means keep.
type CourtPatch struct {
	Name  *string
	Type  *string
	Price *money.Money
}

type CourtCommands interface {
	Create(ctx context.Context, in CourtInput) (int64, error)
	Update(ctx context.Context, id int64, in CourtInput) error
	Patch(ctx context.Context, id int64, in CourtPatch) error
	Delete(ctx context.Context, id int64) error
}

type courtCommandsImpl struct {
	uow   shared.UnitOfWork
	cache CourtCacheInvalidator
}

func NewCourtCommands(uow shared.UnitOfWork, cache CourtCacheInvalidator) CourtCommands {
	return &courtCommandsImpl{uow: uow, cache: cache}
}

func (uc *courtCommandsImpl) Create(ctx context.Context, in CourtInput) (int64, error) {
	c, err := court.NewCourt(in.Name, in.Type, in.Price)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Courts().Create(ctx, c)
		return createErr
	})
	if err != nil {
		return 0, translate(err, errs.ErrCourtNotFound)
	}
	return id, nil
}

func (uc *courtCommandsImpl) Update(ctx context.Context, id int64, in CourtInput) error {
	return uc.modify(ctx, id, func(c *court.Court) error {
		return c.Update(in.Name, in.Type, in.Price)
	})
}

func (uc *courtCommandsImpl) Patch(ctx context.Context, id int64, in CourtPatch) error {
	return uc.modify(ctx, id, func(c *court.Court) error {
		return c.Update(
			patch.Coalesce(in.Name, c.Name()),
			patch.CoalescePtr(in.Type, c.Type()),
			patch.Coalesce(in.Price, c.Price()),
		)
	})
}

func (uc *courtCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Courts().Delete(ctx, id)
	})
	if err != nil {
		return translateDelete(err, errs.ErrCourtNotFound)
	}
	uc.cache.Invalidate(ctx, id)
	return nil
}

func (uc *courtCommandsImpl) modify(ctx context.Context, id int64, change func(*court.Court) error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, findErr := tx.Courts().FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		if changeErr := change(c); changeErr != nil {
			return changeErr
		}
		return tx.Courts().Update(ctx, c)
	})
	if err != nil {
		return translate(err, errs.ErrCourtNotFound)
	}
	uc.cache.Invalidate(ctx, id)
	return nil
}
