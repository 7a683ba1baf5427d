package repository

import (
	"context"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/repository/converter"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/pgconv"
)

type CourtWriteQueries interface {
	CreateCourt(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCourtParams) (sqlc.Courts, error)
	GetCourtByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Courts, error)
	UpdateCourt(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCourtParams) (int64, error)
	DeleteCourt(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type CourtRepository struct {
	queries CourtWriteQueries
	db      sqlc.DBTX
}

func NewCourtRepository(queries CourtWriteQueries, db sqlc.DBTX) *CourtRepository {
	return &CourtRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CourtRepository) Create(ctx context.Context, c *court.Court) (int64, error) {
	row, err := r.queries.CreateCourt(ctx, r.db, converter.CourtToCreateParams(c))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create court", err)
	}
	return row.ID, nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id int64) (*court.Court, error) {
	row, err := r.queries.GetCourtByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}

	c, err := converter.CourtFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode court", err)
	}
	return c, nil
}

func (r *CourtRepository) Update(ctx context.Context, c *court.Court) error {
	affected, err := r.queries.UpdateCourt(ctx, r.db, converter.CourtToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update court", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourtRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteCourt(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete court", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}
