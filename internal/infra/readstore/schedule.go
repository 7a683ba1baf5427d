package readstore

import (
	"context"

	"padel-booking/internal/infra"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleReadQueries interface {
	GetScheduleByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Schedules, error)
	ListSchedules(ctx context.Context, db sqlc.DBTX, courtID pgtype.Int8) ([]sqlc.Schedules, error)
}

type ScheduleReadStore struct {
	queries ScheduleReadQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleReadQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleReadStore) FindByID(ctx context.Context, id int64) (*queries.ScheduleView, error) {
	row, err := r.queries.GetScheduleByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule by ID", err)
	}
	return toScheduleView(row), nil
}

func (r *ScheduleReadStore) List(ctx context.Context, courtID *int64) ([]*queries.ScheduleView, error) {
	rows, err := r.queries.ListSchedules(ctx, r.db, pgconv.Int64PtrToPgtype(courtID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules", err)
	}

	views := make([]*queries.ScheduleView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toScheduleView(row))
	}
	return views, nil
}

func toScheduleView(row sqlc.Schedules) *queries.ScheduleView {
	return &queries.ScheduleView{
		ID:        row.ID,
		CourtID:   row.CourtID,
		Day:       row.Day,
		StartTime: pgconv.ClockFromPgtype(row.StartTime),
		EndTime:   pgconv.ClockFromPgtype(row.EndTime),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
