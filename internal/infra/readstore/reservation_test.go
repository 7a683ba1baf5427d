//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"padel-booking/internal/infra"
	"padel-booking/internal/infra/readstore"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/pgconv"
	readstoremock "padel-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func viewRow(id int64) sqlc.GetReservationViewByIDRow {
	now := pgconv.TimeToPgtype(time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC))
	return sqlc.GetReservationViewByIDRow{
		ID:              id,
		CourtID:         2,
		UserID:          3,
		ReservationDate: pgconv.DateToPgtype(civil.MustParseDate("2025-12-06")),
		StartTime:       pgconv.ClockToPgtype(civil.MustParseTime("18:00")),
		EndTime:         pgconv.ClockToPgtype(civil.MustParseTime("19:30")),
		Status:          "booked",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestReservationReadStore_FindByID(t *testing.T) {
	t.Run("unpaid reservation has no amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockReservationViewQueries(ctrl)
		q.EXPECT().GetReservationViewByID(gomock.Any(), gomock.Any(), int64(1)).Return(viewRow(1), nil)

		view, err := readstore.NewReservationReadStore(q, nil).FindByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "2025-12-06", view.Date.String())
		assert.Equal(t, "19:30", view.EndTime.String())
		assert.Nil(t, view.PaymentID)
		assert.Nil(t, view.Amount)
	})

	t.Run("paid reservation carries the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockReservationViewQueries(ctrl)
		row := viewRow(1)
		row.Status = "paid"
		row.PaymentID = pgtype.Int8{Int64: 40, Valid: true}
		row.PaymentAmountCents = pgtype.Int8{Int64: 0, Valid: true}
		q.EXPECT().GetReservationViewByID(gomock.Any(), gomock.Any(), int64(1)).Return(row, nil)

		view, err := readstore.NewReservationReadStore(q, nil).FindByID(context.Background(), 1)

		require.NoError(t, err)
		require.NotNil(t, view.PaymentID)
		assert.Equal(t, int64(40), *view.PaymentID)
		require.NotNil(t, view.Amount)
		assert.Equal(t, "0.00", view.Amount.String())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockReservationViewQueries(ctrl)
		q.EXPECT().GetReservationViewByID(gomock.Any(), gomock.Any(), int64(9)).
			Return(sqlc.GetReservationViewByIDRow{}, pgx.ErrNoRows)

		_, err := readstore.NewReservationReadStore(q, nil).FindByID(context.Background(), 9)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationReadStore_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockReservationViewQueries(ctrl)
	q.EXPECT().ListReservationViews(gomock.Any(), gomock.Any()).Return([]sqlc.ListReservationViewsRow{
		sqlc.ListReservationViewsRow(viewRow(1)),
		sqlc.ListReservationViewsRow(viewRow(2)),
	}, nil)

	views, err := readstore.NewReservationReadStore(q, nil).List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(1), views[0].ID)
	assert.Equal(t, int64(2), views[1].ID)
}
