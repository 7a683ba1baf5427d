package readstore

import (
	"context"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/infra"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationViewByIDRow, error)
	ListReservationViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationViewsRow, error)
	ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) List(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, rowToReservationView(sqlc.GetReservationViewByIDRow(row)))
	}
	return views, nil
}

func (r *ReservationReadStore) ExistsOverlapping(ctx context.Context, courtID int64, date civil.Date, window reservation.TimeRange) (bool, error) {
	taken, err := r.queries.ExistsOverlappingReservation(ctx, r.db, sqlc.ExistsOverlappingReservationParams{
		CourtID:         courtID,
		ReservationDate: pgconv.DateToPgtype(date),
		WindowEnd:       pgconv.ClockToPgtype(window.End),
		WindowStart:     pgconv.ClockToPgtype(window.Start),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check availability", err)
	}
	return taken, nil
}

func rowToReservationView(row sqlc.GetReservationViewByIDRow) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:        row.ID,
		Date:      pgconv.DateFromPgtype(row.ReservationDate),
		StartTime: pgconv.ClockFromPgtype(row.StartTime),
		EndTime:   pgconv.ClockFromPgtype(row.EndTime),
		UserID:    row.UserID,
		CourtID:   row.CourtID,
		Status:    row.Status,
		PaymentID: pgconv.Int64PtrFromPgtype(row.PaymentID),
		PaidAt:    pgconv.TimePtrFromPgtype(row.PaymentPaidAt),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.PaymentAmountCents.Valid {
		amount := money.MustFromCents(row.PaymentAmountCents.Int64)
		view.Amount = &amount
	}
	return view
}
