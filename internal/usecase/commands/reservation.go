package commands

import (
	"context"
	"log/slog"

	"padel-booking/internal/domain/payment"
	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/usecase/shared"
)

type RegisterReservationInput struct {
	UserID    int64
	CourtID   int64
	Date      string
	StartTime string
	EndTime   string
}

type ReservationCommands interface {
	// Register books a court window and returns the new reservation id.
	Register(ctx context.Context, in RegisterReservationInput) (int64, error)
	Cancel(ctx context.Context, id int64) error
	// Pay attaches a payment of amount (0.00 when nil). Paying twice is a no-op.
	Pay(ctx context.Context, id int64, amount *money.Money) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher EventPublisher
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock, publisher EventPublisher) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
	}
}

func (uc *reservationCommandsImpl) Register(ctx context.Context, in RegisterReservationInput) (int64, error) {
	slot, err := reservation.ParseSlot(in.CourtID, in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return 0, err
	}
	draft, err := reservation.NewReservation(in.UserID, slot)
	if err != nil {
		return 0, err
	}

	var created *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Reservations()
		if lockErr := repo.LockSlot(ctx, slot); lockErr != nil {
			return lockErr
		}

		available, checkErr := reservation.NewAvailabilityChecker(repo).IsAvailable(ctx, slot)
		if checkErr != nil {
			return checkErr
		}
		if !available {
			return errs.ErrReservationConflict
		}

		id, createErr := repo.Create(ctx, draft)
		if createErr != nil {
			return createErr
		}
		now := uc.clock.Now()
		created = reservation.ReconstructReservation(
			id, draft.UserID(), draft.CourtID(), draft.Date(), draft.Window(),
			draft.Status(), nil, now, now,
		)
		return nil
	})
	if err != nil {
		return 0, translate(err, errs.ErrReservationNotFound)
	}

	uc.publish(ctx, reservation.EventBooked, created)
	return created.ID(), nil
}

func (uc *reservationCommandsImpl) Cancel(ctx context.Context, id int64) error {
	var (
		cancelled *reservation.Reservation
		changed   bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, findErr := tx.Reservations().FindByIDForUpdate(ctx, id)
		if findErr != nil {
			return findErr
		}

		ok, cancelErr := res.Cancel()
		if cancelErr != nil {
			return cancelErr
		}
		changed = ok
		if !ok {
			return nil
		}

		cancelled = res
		return tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status())
	})
	if err != nil {
		return translate(err, errs.ErrReservationNotFound)
	}

	if changed {
		uc.publish(ctx, reservation.EventCancelled, cancelled)
	}
	return nil
}

func (uc *reservationCommandsImpl) Pay(ctx context.Context, id int64, amount *money.Money) error {
	charge := money.Zero()
	if amount != nil {
		charge = *amount
	}

	var (
		paid    *reservation.Reservation
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		changed = false
		res, findErr := tx.Reservations().FindByIDForUpdate(ctx, id)
		if findErr != nil {
			return findErr
		}

		payable, payErr := res.CanPay()
		if payErr != nil {
			return payErr
		}
		if !payable {
			return nil
		}

		p, newErr := payment.NewPayment(res.ID(), uc.clock.Now(), charge)
		if newErr != nil {
			return newErr
		}

		paymentID, inserted, attachErr := tx.Payments().AttachIfAbsent(ctx, p)
		if attachErr != nil {
			return attachErr
		}
		if !inserted {
			existing, readErr := tx.Payments().FindByReservationID(ctx, res.ID())
			if readErr != nil {
				return readErr
			}
			paymentID = existing.ID()
		}

		if markErr := res.MarkPaid(paymentID); markErr != nil {
			return markErr
		}
		if updateErr := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); updateErr != nil {
			return updateErr
		}
		paid = res
		changed = inserted
		return nil
	})
	if err != nil {
		return translate(err, errs.ErrReservationNotFound)
	}

	if changed {
		uc.publish(ctx, reservation.EventPaid, paid)
	}
	return nil
}

// publish runs after commit, so a delivery failure is only logged.
func (uc *reservationCommandsImpl) publish(ctx context.Context, typ reservation.EventType, res *reservation.Reservation) {
	event := reservation.NewEvent(typ, res, uc.clock.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish reservation event",
			"event_type", string(typ),
			"reservation_id", res.ID(),
			"error", err.Error())
	}
}
