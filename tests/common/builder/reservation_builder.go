//go:build unit || e2e

package builder

import (
	"time"

	"padel-booking/internal/domain/reservation"
	reqdto "padel-booking/internal/handler/dto/request"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID        int64
	UserID    int64
	CourtID   int64
	Date      string
	StartTime string
	EndTime   string
	Status    reservation.Status
	PaymentID *int64
	Amount    *money.Money
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        1,
		UserID:    1,
		CourtID:   1,
		Date:      "2025-12-06",
		StartTime: "18:00",
		EndTime:   "19:00",
		Status:    reservation.StatusBooked,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildSlot() (reservation.Slot, error) {
	return reservation.ParseSlot(b.CourtID, b.Date, b.StartTime, b.EndTime)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.UserID, slot)
}

// BuildStored returns the reservation as it is read back from storage.
func (b *ReservationBuilder) BuildStored() *reservation.Reservation {
	now := time.Now()
	return reservation.ReconstructReservation(
		b.ID, b.UserID, b.CourtID,
		civil.MustParseDate(b.Date),
		reservation.TimeRange{Start: civil.MustParseTime(b.StartTime), End: civil.MustParseTime(b.EndTime)},
		b.Status,
		b.PaymentID,
		now, now,
	)
}

func (b *ReservationBuilder) BuildLockedRow() sqlc.GetReservationForUpdateRow {
	now := time.Now()
	return sqlc.GetReservationForUpdateRow{
		ID:              b.ID,
		CourtID:         b.CourtID,
		UserID:          b.UserID,
		ReservationDate: pgconv.DateToPgtype(civil.MustParseDate(b.Date)),
		StartTime:       pgconv.ClockToPgtype(civil.MustParseTime(b.StartTime)),
		EndTime:         pgconv.ClockToPgtype(civil.MustParseTime(b.EndTime)),
		Status:          b.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(now),
		UpdatedAt:       pgconv.TimeToPgtype(now),
		PaymentID:       pgconv.Int64PtrToPgtype(b.PaymentID),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:        b.ID,
		Date:      civil.MustParseDate(b.Date),
		StartTime: civil.MustParseTime(b.StartTime),
		EndTime:   civil.MustParseTime(b.EndTime),
		UserID:    b.UserID,
		CourtID:   b.CourtID,
		Status:    b.Status.String(),
		PaymentID: b.PaymentID,
		Amount:    b.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ReservationBuilder) BuildRequest() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		UserID:    b.UserID,
		CourtID:   b.CourtID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithCourt(courtID int64) *ReservationBuilder {
	b.CourtID = courtID
	return b
}

func (b *ReservationBuilder) WithUser(userID int64) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithWindow(start, end string) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) AsCancelled() *ReservationBuilder {
	b.Status = reservation.StatusCancelled
	return b
}

func (b *ReservationBuilder) AsPaid(paymentID int64, amount money.Money) *ReservationBuilder {
	b.Status = reservation.StatusPaid
	b.PaymentID = &paymentID
	b.Amount = &amount
	return b
}
