package commands

import (
	"context"

	"padel-booking/internal/domain/schedule"
	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/patch"
	"padel-booking/internal/usecase/shared"
)

type ScheduleInput struct {
	CourtID   int64
	Day       string
	StartTime string
	EndTime   string
}

type SchedulePatch struct {
	CourtID   *int64
	Day       *string
	StartTime *string
	EndTime   *string
}

type ScheduleCommands interface {
	Create(ctx context.Context, in ScheduleInput) (int64, error)
	Update(ctx context.Context, id int64, in ScheduleInput) error
	Patch(ctx context.Context, id int64, in SchedulePatch) error
	Delete(ctx context.Context, id int64) error
}

type scheduleCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleCommands(uow shared.UnitOfWork) ScheduleCommands {
	return &scheduleCommandsImpl{uow: uow}
}

func (uc *scheduleCommandsImpl) Create(ctx context.Context, in ScheduleInput) (int64, error) {
	start, end, err := parseWindow(in.StartTime, in.EndTime)
	if err != nil {
		return 0, err
	}
	s, err := schedule.NewSchedule(in.CourtID, in.Day, start, end)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Schedules().Create(ctx, s)
		return createErr
	})
	if err != nil {
		return 0, translate(err, errs.ErrScheduleNotFound)
	}
	return id, nil
}

func (uc *scheduleCommandsImpl) Update(ctx context.Context, id int64, in ScheduleInput) error {
	start, end, err := parseWindow(in.StartTime, in.EndTime)
	if err != nil {
		return err
	}
	return uc.modify(ctx, id, func(s *schedule.Schedule) error {
		return s.Update(in.CourtID, in.Day, start, end)
	})
}

func (uc *scheduleCommandsImpl) Patch(ctx context.Context, id int64, in SchedulePatch) error {
	return uc.modify(ctx, id, func(s *schedule.Schedule) error {
		start, end, err := parseWindow(
			patch.Coalesce(in.StartTime, s.StartTime().String()),
			patch.Coalesce(in.EndTime, s.EndTime().String()),
		)
		if err != nil {
			return err
		}
		return s.Update(
			patch.Coalesce(in.CourtID, s.CourtID()),
			patch.Coalesce(in.Day, s.Day()),
			start,
			end,
		)
	})
}

func (uc *scheduleCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Schedules().Delete(ctx, id)
	})
	return translateDelete(err, errs.ErrScheduleNotFound)
}

func (uc *scheduleCommandsImpl) modify(ctx context.Context, id int64, change func(*schedule.Schedule) error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, findErr := tx.Schedules().FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		if changeErr := change(s); changeErr != nil {
			return changeErr
		}
		return tx.Schedules().Update(ctx, s)
	})
	return translate(err, errs.ErrScheduleNotFound)
}

func parseWindow(start, end string) (civil.Time, civil.Time, error) {
	s, err := civil.ParseTime(start)
	if err != nil {
		return civil.Time{}, civil.Time{}, errs.Mark(err, errs.ErrInvalidFormat)
	}
	e, err := civil.ParseTime(end)
	if err != nil {
		return civil.Time{}, civil.Time{}, errs.Mark(err, errs.ErrInvalidFormat)
	}
	return s, e, nil
}
