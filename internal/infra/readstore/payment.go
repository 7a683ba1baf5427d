package readstore

import (
	"context"

	"padel-booking/internal/infra"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"
)

type PaymentReadQueries interface {
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Payments, error)
	ListPayments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id int64) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return toPaymentView(row), nil
}

func (r *PaymentReadStore) List(ctx context.Context) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPayments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toPaymentView(row))
	}
	return views, nil
}

func toPaymentView(row sqlc.Payments) *queries.PaymentView {
	return &queries.PaymentView{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		PaidAt:        pgconv.TimeFromPgtype(row.PaidAt),
		Amount:        money.MustFromCents(row.AmountCents),
	}
}
