package repository

import (
	"context"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/repository/converter"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	LockReservationSlot(ctx context.Context, db sqlc.DBTX, lockKey string) error
	ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationForUpdateRow, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) LockSlot(ctx context.Context, slot reservation.Slot) error {
	if err := r.queries.LockReservationSlot(ctx, r.db, slot.LockKey()); err != nil {
		return infra.WrapRepoErr("failed to lock reservation slot", err)
	}
	return nil
}

func (r *ReservationRepository) ExistsOverlapping(ctx context.Context, courtID int64, date civil.Date, window reservation.TimeRange) (bool, error) {
	taken, err := r.queries.ExistsOverlappingReservation(ctx, r.db, sqlc.ExistsOverlappingReservationParams{
		CourtID:         courtID,
		ReservationDate: pgconv.DateToPgtype(date),
		WindowEnd:       pgconv.ClockToPgtype(window.End),
		WindowStart:     pgconv.ClockToPgtype(window.Start),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}
	return taken, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	params := converter.ReservationToCreateParams(res)

	row, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return row.ID, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationFromLockedRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status reservation.Status) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, r.db, sqlc.UpdateReservationStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
