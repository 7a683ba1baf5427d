package converter

import (
	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/payment"
	"padel-booking/internal/domain/schedule"
	"padel-booking/internal/domain/user"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/pkg/pgconv"
)

func CourtToCreateParams(c *court.Court) sqlc.CreateCourtParams {
	return sqlc.CreateCourtParams{
		Name:       c.Name(),
		Type:       pgconv.StringPtrToPgtype(c.Type()),
		PriceCents: c.Price().Cents(),
	}
}

func CourtToUpdateParams(c *court.Court) sqlc.UpdateCourtParams {
	return sqlc.UpdateCourtParams{
		ID:         c.ID(),
		Name:       c.Name(),
		Type:       pgconv.StringPtrToPgtype(c.Type()),
		PriceCents: c.Price().Cents(),
	}
}

func CourtFromRow(row sqlc.Courts) (*court.Court, error) {
	price, err := money.FromCents(row.PriceCents)
	if err != nil {
		return nil, err
	}
	return court.ReconstructCourt(
		row.ID,
		row.Name,
		pgconv.StringPtrFromPgtype(row.Type),
		price,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ScheduleToCreateParams(s *schedule.Schedule) sqlc.CreateScheduleParams {
	return sqlc.CreateScheduleParams{
		CourtID:   s.CourtID(),
		Day:       s.Day(),
		StartTime: pgconv.ClockToPgtype(s.StartTime()),
		EndTime:   pgconv.ClockToPgtype(s.EndTime()),
	}
}

func ScheduleToUpdateParams(s *schedule.Schedule) sqlc.UpdateScheduleParams {
	return sqlc.UpdateScheduleParams{
		ID:        s.ID(),
		CourtID:   s.CourtID(),
		Day:       s.Day(),
		StartTime: pgconv.ClockToPgtype(s.StartTime()),
		EndTime:   pgconv.ClockToPgtype(s.EndTime()),
	}
}

func ScheduleFromRow(row sqlc.Schedules) *schedule.Schedule {
	return schedule.ReconstructSchedule(
		row.ID,
		row.CourtID,
		row.Day,
		pgconv.ClockFromPgtype(row.StartTime),
		pgconv.ClockFromPgtype(row.EndTime),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		Name:  pgconv.StringPtrToPgtype(u.Name()),
		Email: pgconv.StringPtrToPgtype(u.Email()),
		Phone: pgconv.StringPtrToPgtype(u.Phone()),
	}
}

func UserToUpdateParams(u *user.User) sqlc.UpdateUserParams {
	return sqlc.UpdateUserParams{
		ID:    u.ID(),
		Name:  pgconv.StringPtrToPgtype(u.Name()),
		Email: pgconv.StringPtrToPgtype(u.Email()),
		Phone: pgconv.StringPtrToPgtype(u.Phone()),
	}
}

func UserFromRow(row sqlc.Users) *user.User {
	return user.ReconstructUser(
		row.ID,
		pgconv.StringPtrFromPgtype(row.Name),
		pgconv.StringPtrFromPgtype(row.Email),
		pgconv.StringPtrFromPgtype(row.Phone),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PaymentToInsertParams(p *payment.Payment) sqlc.InsertPaymentIfAbsentParams {
	return sqlc.InsertPaymentIfAbsentParams{
		ReservationID: p.ReservationID(),
		PaidAt:        pgconv.TimeToPgtype(p.PaidAt()),
		AmountCents:   p.Amount().Cents(),
	}
}

func PaymentFromRow(row sqlc.Payments) (*payment.Payment, error) {
	amount, err := money.FromCents(row.AmountCents)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructPayment(row.ID, row.ReservationID, pgconv.TimeFromPgtype(row.PaidAt), amount), nil
}
