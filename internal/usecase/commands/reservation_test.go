//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"padel-booking/internal/domain/payment"
	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/shared"
	"padel-booking/tests/common/builder"
	commandsmock "padel-booking/tests/mock/commands"
	sharedmock "padel-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type reservationCommandsSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	payments     *sharedmock.MockPaymentRepository
	publisher    *commandsmock.MockEventPublisher
	clock        *clock.MockClock
	sut          commands.ReservationCommands
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(reservationCommandsSuite))
}

func (s *reservationCommandsSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.publisher = commandsmock.NewMockEventPublisher(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC))

	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Payments().Return(s.payments).AnyTimes()

	s.sut = commands.NewReservationCommands(s.uow, s.clock, s.publisher)
}

func (s *reservationCommandsSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectTx runs the callback against the mocked transaction, as the real UoW would.
func (s *reservationCommandsSuite) expectTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func registerInput(b *builder.ReservationBuilder) commands.RegisterReservationInput {
	return commands.RegisterReservationInput{
		UserID:    b.UserID,
		CourtID:   b.CourtID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (s *reservationCommandsSuite) TestRegister() {
	s.Run("books a free window", func() {
		s.SetupTest()
		b := builder.NewReservationBuilder()
		s.expectTx()

		gomock.InOrder(
			s.reservations.EXPECT().LockSlot(gomock.Any(), gomock.Any()).Return(nil),
			s.reservations.EXPECT().ExistsOverlapping(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(false, nil),
			s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r *reservation.Reservation) (int64, error) {
					s.Equal(reservation.StatusBooked, r.Status())
					s.Equal("18:00", r.Window().Start.String())
					return 11, nil
				}),
		)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev reservation.Event) error {
				s.Equal(reservation.EventBooked, ev.Type)
				s.Equal(int64(11), ev.ReservationID)
				s.Nil(ev.PaymentID)
				return nil
			})

		id, err := s.sut.Register(context.Background(), registerInput(b))
		s.Require().NoError(err)
		s.Equal(int64(11), id)
	})

	s.Run("overlapping window is a conflict", func() {
		s.SetupTest()
		b := builder.NewReservationBuilder().WithWindow("19:00", "20:00")
		s.expectTx()

		s.reservations.EXPECT().LockSlot(gomock.Any(), gomock.Any()).Return(nil)
		s.reservations.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := s.sut.Register(context.Background(), registerInput(b))
		s.True(errs.Is(err, errs.ErrReservationConflict))
	})

	s.Run("exclusion constraint violation is a conflict", func() {
		s.SetupTest()
		b := builder.NewReservationBuilder()
		s.expectTx()

		s.reservations.EXPECT().LockSlot(gomock.Any(), gomock.Any()).Return(nil)
		s.reservations.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("create reservation", assert.AnError, infra.KindConflict))

		_, err := s.sut.Register(context.Background(), registerInput(b))
		s.True(errs.Is(err, errs.ErrReservationConflict))
	})

	s.Run("unknown court or user is a missing reference", func() {
		s.SetupTest()
		b := builder.NewReservationBuilder().WithCourt(404)
		s.expectTx()

		s.reservations.EXPECT().LockSlot(gomock.Any(), gomock.Any()).Return(nil)
		s.reservations.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("create reservation", assert.AnError, infra.KindForeignKeyViolated))

		_, err := s.sut.Register(context.Background(), registerInput(b))
		s.True(errs.Is(err, errs.ErrReferenceNotFound))
	})

	s.Run("malformed input never reaches storage", func() {
		s.SetupTest()
		b := builder.NewReservationBuilder().WithDate("2025/12/06")

		_, err := s.sut.Register(context.Background(), registerInput(b))
		s.True(errs.Is(err, errs.ErrInvalidFormat))
	})

	s.Run("reversed window is a validation error", func() {
		s.SetupTest()
		b := builder.NewReservationBuilder().WithWindow("20:00", "19:00")

		_, err := s.sut.Register(context.Background(), registerInput(b))
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("publish failure does not fail the booking", func() {
		s.SetupTest()
		b := builder.NewReservationBuilder()
		s.expectTx()

		s.reservations.EXPECT().LockSlot(gomock.Any(), gomock.Any()).Return(nil)
		s.reservations.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(3), nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(assert.AnError)

		id, err := s.sut.Register(context.Background(), registerInput(b))
		s.Require().NoError(err)
		s.Equal(int64(3), id)
	})
}

func (s *reservationCommandsSuite) TestCancel() {
	s.Run("booked reservation is cancelled", func() {
		s.SetupTest()
		stored := builder.NewReservationBuilder().WithID(5).BuildStored()
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(stored, nil)
		s.reservations.EXPECT().UpdateStatus(gomock.Any(), int64(5), reservation.StatusCancelled).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev reservation.Event) error {
				s.Equal(reservation.EventCancelled, ev.Type)
				return nil
			})

		s.NoError(s.sut.Cancel(context.Background(), 5))
	})

	s.Run("already cancelled is a no-op", func() {
		s.SetupTest()
		stored := builder.NewReservationBuilder().WithID(5).AsCancelled().BuildStored()
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(stored, nil)

		s.NoError(s.sut.Cancel(context.Background(), 5))
	})

	s.Run("paid reservation cannot be cancelled", func() {
		s.SetupTest()
		stored := builder.NewReservationBuilder().WithID(5).AsPaid(2, money.Zero()).BuildStored()
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(stored, nil)

		err := s.sut.Cancel(context.Background(), 5)
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})

	s.Run("missing reservation", func() {
		s.SetupTest()
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(99)).
			Return(nil, infra.WrapRepoErr("find reservation", assert.AnError, infra.KindNotFound))

		err := s.sut.Cancel(context.Background(), 99)
		s.True(errs.Is(err, errs.ErrReservationNotFound))
	})
}

func (s *reservationCommandsSuite) TestPay() {
	s.Run("attaches a payment with the given amount", func() {
		s.SetupTest()
		stored := builder.NewReservationBuilder().WithID(5).BuildStored()
		amount := money.MustFromCents(1250)
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(stored, nil)
		s.payments.EXPECT().AttachIfAbsent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) (int64, bool, error) {
				s.Equal(int64(5), p.ReservationID())
				s.Equal(int64(1250), p.Amount().Cents())
				s.Equal(s.clock.Now(), p.PaidAt())
				return 21, true, nil
			})
		s.reservations.EXPECT().UpdateStatus(gomock.Any(), int64(5), reservation.StatusPaid).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev reservation.Event) error {
				s.Equal(reservation.EventPaid, ev.Type)
				s.Require().NotNil(ev.PaymentID)
				s.Equal(int64(21), *ev.PaymentID)
				return nil
			})

		s.NoError(s.sut.Pay(context.Background(), 5, &amount))
	})

	s.Run("amount defaults to zero", func() {
		s.SetupTest()
		stored := builder.NewReservationBuilder().WithID(5).BuildStored()
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(stored, nil)
		s.payments.EXPECT().AttachIfAbsent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) (int64, bool, error) {
				s.True(p.Amount().IsZero())
				return 21, true, nil
			})
		s.reservations.EXPECT().UpdateStatus(gomock.Any(), int64(5), reservation.StatusPaid).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		s.NoError(s.sut.Pay(context.Background(), 5, nil))
	})

	s.Run("paying a paid reservation is a no-op", func() {
		s.SetupTest()
		stored := builder.NewReservationBuilder().WithID(5).AsPaid(21, money.Zero()).BuildStored()
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(stored, nil)

		s.NoError(s.sut.Pay(context.Background(), 5, nil))
	})

	s.Run("concurrent payment wins the insert", func() {
		s.SetupTest()
		stored := builder.NewReservationBuilder().WithID(5).BuildStored()
		existing := payment.ReconstructPayment(30, 5, s.clock.Now(), money.Zero())
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(stored, nil)
		s.payments.EXPECT().AttachIfAbsent(gomock.Any(), gomock.Any()).Return(int64(0), false, nil)
		s.payments.EXPECT().FindByReservationID(gomock.Any(), int64(5)).Return(existing, nil)
		s.reservations.EXPECT().UpdateStatus(gomock.Any(), int64(5), reservation.StatusPaid).Return(nil)

		s.NoError(s.sut.Pay(context.Background(), 5, nil))
		s.Require().NotNil(stored.PaymentID())
		s.Equal(int64(30), *stored.PaymentID())
	})

	s.Run("cancelled reservation cannot be paid", func() {
		s.SetupTest()
		stored := builder.NewReservationBuilder().WithID(5).AsCancelled().BuildStored()
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).Return(stored, nil)

		err := s.sut.Pay(context.Background(), 5, nil)
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})

	s.Run("database failure is reported as such", func() {
		s.SetupTest()
		s.expectTx()

		s.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), int64(5)).
			Return(nil, infra.WrapRepoErr("find reservation", assert.AnError))

		err := s.sut.Pay(context.Background(), 5, nil)
		require.Error(s.T(), err)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
