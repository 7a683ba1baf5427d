package repository

import (
	"context"

	"padel-booking/internal/domain/payment"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/repository/converter"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/pgconv"
)

type PaymentWriteQueries interface {
	InsertPaymentIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentIfAbsentParams) (sqlc.Payments, error)
	GetPaymentByReservationID(ctx context.Context, db sqlc.DBTX, reservationID int64) (sqlc.Payments, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// AttachIfAbsent relies on ON CONFLICT DO NOTHING: no returned row means
// another payment for the same reservation already exists.
func (r *PaymentRepository) AttachIfAbsent(ctx context.Context, p *payment.Payment) (int64, bool, error) {
	row, err := r.queries.InsertPaymentIfAbsent(ctx, r.db, converter.PaymentToInsertParams(p))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to attach payment", err)
	}
	return row.ID, true, nil
}

func (r *PaymentRepository) FindByReservationID(ctx context.Context, reservationID int64) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByReservationID(ctx, r.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by reservation", err)
	}

	p, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment", err)
	}
	return p, nil
}
