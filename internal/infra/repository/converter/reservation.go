package converter

import (
	"padel-booking/internal/domain/reservation"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		CourtID:         r.CourtID(),
		UserID:          r.UserID(),
		ReservationDate: pgconv.DateToPgtype(r.Date()),
		StartTime:       pgconv.ClockToPgtype(r.Window().Start),
		EndTime:         pgconv.ClockToPgtype(r.Window().End),
		Status:          r.Status().String(),
	}
}

func ReservationFromLockedRow(row sqlc.GetReservationForUpdateRow) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	window := reservation.TimeRange{
		Start: pgconv.ClockFromPgtype(row.StartTime),
		End:   pgconv.ClockFromPgtype(row.EndTime),
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.CourtID,
		pgconv.DateFromPgtype(row.ReservationDate),
		window,
		status,
		pgconv.Int64PtrFromPgtype(row.PaymentID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
