//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"padel-booking/internal/domain/payment"
	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/repository"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/tests/common/builder"
	repositorymock "padel-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationRepository_Create(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		dbErr    error
		wantID   int64
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", wantID: 21},
		{name: "exclusion constraint reports a conflict", dbErr: &pgconn.PgError{Code: "23P01"}, wantKind: infra.KindConflict},
		{name: "unknown court reports a foreign key violation", dbErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "other failures", dbErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockReservationWriteQueries(ctrl)
			q.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), sqlc.CreateReservationParams{
				CourtID:         1,
				UserID:          1,
				ReservationDate: pgconv.DateToPgtype(civil.MustParseDate("2025-12-06")),
				StartTime:       pgconv.ClockToPgtype(civil.MustParseTime("18:00")),
				EndTime:         pgconv.ClockToPgtype(civil.MustParseTime("19:00")),
				Status:          "booked",
			}).Return(sqlc.Reservations{ID: tt.wantID}, tt.dbErr)

			id, err := repository.NewReservationRepository(q, nil).Create(context.Background(), res)

			if tt.dbErr != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestReservationRepository_LockAndOverlap(t *testing.T) {
	slot, err := builder.NewReservationBuilder().WithCourt(7).BuildSlot()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockReservationWriteQueries(ctrl)
	gomock.InOrder(
		q.EXPECT().LockReservationSlot(gomock.Any(), gomock.Any(), "reservation:7:2025-12-06").Return(nil),
		q.EXPECT().ExistsOverlappingReservation(gomock.Any(), gomock.Any(), sqlc.ExistsOverlappingReservationParams{
			CourtID:         7,
			ReservationDate: pgconv.DateToPgtype(slot.Date),
			WindowEnd:       pgconv.ClockToPgtype(slot.Window.End),
			WindowStart:     pgconv.ClockToPgtype(slot.Window.Start),
		}).Return(true, nil),
	)

	repo := repository.NewReservationRepository(q, nil)
	require.NoError(t, repo.LockSlot(context.Background(), slot))
	taken, err := repo.ExistsOverlapping(context.Background(), slot.CourtID, slot.Date, slot.Window)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestReservationRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("decodes the locked row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		row := builder.NewReservationBuilder().WithID(4).AsPaid(9, money.Zero()).BuildLockedRow()
		q.EXPECT().GetReservationForUpdate(gomock.Any(), gomock.Any(), int64(4)).Return(row, nil)

		res, err := repository.NewReservationRepository(q, nil).FindByIDForUpdate(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPaid, res.Status())
		require.NotNil(t, res.PaymentID())
		assert.Equal(t, int64(9), *res.PaymentID())
		assert.Equal(t, "19:00", res.Window().End.String())
	})

	t.Run("no rows is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		q.EXPECT().GetReservationForUpdate(gomock.Any(), gomock.Any(), int64(4)).
			Return(sqlc.GetReservationForUpdateRow{}, pgx.ErrNoRows)

		_, err := repository.NewReservationRepository(q, nil).FindByIDForUpdate(context.Background(), 4)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown stored status fails decoding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		row := builder.NewReservationBuilder().BuildLockedRow()
		row.Status = "archived"
		q.EXPECT().GetReservationForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(row, nil)

		_, err := repository.NewReservationRepository(q, nil).FindByIDForUpdate(context.Background(), 1)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockReservationWriteQueries(ctrl)
	q.EXPECT().UpdateReservationStatus(gomock.Any(), gomock.Any(), sqlc.UpdateReservationStatusParams{ID: 3, Status: "cancelled"}).
		Return(int64(0), nil)

	err := repository.NewReservationRepository(q, nil).UpdateStatus(context.Background(), 3, reservation.StatusCancelled)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestPaymentRepository_AttachIfAbsent(t *testing.T) {
	p, err := payment.NewPayment(5, time.Date(2025, 12, 6, 19, 5, 0, 0, time.UTC), money.MustFromCents(1200))
	require.NoError(t, err)

	t.Run("inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockPaymentWriteQueries(ctrl)
		q.EXPECT().InsertPaymentIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(sqlc.Payments{ID: 30}, nil)

		id, created, err := repository.NewPaymentRepository(q, nil).AttachIfAbsent(context.Background(), p)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(30), id)
	})

	t.Run("existing payment wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockPaymentWriteQueries(ctrl)
		q.EXPECT().InsertPaymentIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(sqlc.Payments{}, pgx.ErrNoRows)

		_, created, err := repository.NewPaymentRepository(q, nil).AttachIfAbsent(context.Background(), p)
		require.NoError(t, err)
		assert.False(t, created)
	})
}
