package shared

import (
	"context"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/payment"
	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/domain/schedule"
	"padel-booking/internal/domain/user"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction, retrying it on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Courts() CourtRepository
	Schedules() ScheduleRepository
	Users() UserRepository
}

type ReservationRepository interface {
	reservation.OverlapFinder
	// LockSlot serialises writers of the same court and date until the transaction ends.
	LockSlot(ctx context.Context, slot reservation.Slot) error
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status reservation.Status) error
}

type PaymentRepository interface {
	// AttachIfAbsent inserts p unless its reservation already has a payment.
	// inserted is false when an existing row won.
	AttachIfAbsent(ctx context.Context, p *payment.Payment) (id int64, inserted bool, err error)
	FindByReservationID(ctx context.Context, reservationID int64) (*payment.Payment, error)
}

type CourtRepository interface {
	Create(ctx context.Context, c *court.Court) (int64, error)
	FindByID(ctx context.Context, id int64) (*court.Court, error)
	Update(ctx context.Context, c *court.Court) error
	Delete(ctx context.Context, id int64) error
}

type ScheduleRepository interface {
	Create(ctx context.Context, s *schedule.Schedule) (int64, error)
	FindByID(ctx context.Context, id int64) (*schedule.Schedule, error)
	Update(ctx context.Context, s *schedule.Schedule) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id int64) error
}
