package readstore

import (
	"context"

	"padel-booking/internal/infra"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"
)

type CourtReadQueries interface {
	GetCourtByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Courts, error)
	ListCourts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Courts, error)
}

type CourtReadStore struct {
	queries CourtReadQueries
	db      sqlc.DBTX
}

func NewCourtReadStore(queries CourtReadQueries, db sqlc.DBTX) *CourtReadStore {
	return &CourtReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CourtReadStore) FindByID(ctx context.Context, id int64) (*queries.CourtView, error) {
	row, err := r.queries.GetCourtByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}
	return toCourtView(row), nil
}

func (r *CourtReadStore) List(ctx context.Context) ([]*queries.CourtView, error) {
	rows, err := r.queries.ListCourts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}

	views := make([]*queries.CourtView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCourtView(row))
	}
	return views, nil
}

func toCourtView(row sqlc.Courts) *queries.CourtView {
	return &queries.CourtView{
		ID:        row.ID,
		Name:      row.Name,
		Type:      pgconv.StringPtrFromPgtype(row.Type),
		Price:     money.MustFromCents(row.PriceCents),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
