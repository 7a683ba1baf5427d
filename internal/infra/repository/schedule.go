package repository

import (
	"context"

	"padel-booking/internal/domain/schedule"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/repository/converter"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/pgconv"
)

type ScheduleWriteQueries interface {
	CreateSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateScheduleParams) (sqlc.Schedules, error)
	GetScheduleByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Schedules, error)
	UpdateSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateScheduleParams) (int64, error)
	DeleteSchedule(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ScheduleRepository struct {
	queries ScheduleWriteQueries
	db      sqlc.DBTX
}

func NewScheduleRepository(queries ScheduleWriteQueries, db sqlc.DBTX) *ScheduleRepository {
	return &ScheduleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *schedule.Schedule) (int64, error) {
	row, err := r.queries.CreateSchedule(ctx, r.db, converter.ScheduleToCreateParams(s))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create schedule", err)
	}
	return row.ID, nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id int64) (*schedule.Schedule, error) {
	row, err := r.queries.GetScheduleByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule by ID", err)
	}
	return converter.ScheduleFromRow(row), nil
}

func (r *ScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) error {
	affected, err := r.queries.UpdateSchedule(ctx, r.db, converter.ScheduleToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update schedule", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteSchedule(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete schedule", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound)
	}
	return nil
}
