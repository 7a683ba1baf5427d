//go:build unit

package queries_test

import (
	"context"
	"testing"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/queries"
	"padel-booking/tests/common/builder"
	queriesmock "padel-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries(t *testing.T) {
	t.Run("validate passes the parsed slot to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().ExistsOverlapping(gomock.Any(), int64(1), civil.MustParseDate("2025-12-06"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ civil.Date, w reservation.TimeRange) (bool, error) {
				assert.Equal(t, "19:00", w.Start.String())
				assert.Equal(t, "20:00", w.End.String())
				return true, nil
			})

		ok, err := queries.NewReservationQueries(store).ValidateAvailability(context.Background(), 1, "2025-12-06", "19:00", "20:00")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("validate rejects malformed input without a lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)

		_, err := queries.NewReservationQueries(store).ValidateAvailability(context.Background(), 1, "2025-12-06", "7pm", "20:00")
		assert.True(t, errs.Is(err, errs.ErrInvalidFormat))
	})

	t.Run("get maps missing rows to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(4)).
			Return(nil, infra.WrapRepoErr("find reservation view", assert.AnError, infra.KindNotFound))

		_, err := queries.NewReservationQueries(store).GetByID(context.Background(), 4)
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})

	t.Run("list failure is a database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return(nil, infra.WrapRepoErr("list reservations", assert.AnError))

		_, err := queries.NewReservationQueries(store).List(context.Background())
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestCourtQueriesReadThrough(t *testing.T) {
	view := builder.NewCourtBuilder().WithID(3).BuildView()

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCourtReadStore(ctrl)
		cache := queriesmock.NewMockCourtCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), int64(3)).Return(view, true)

		got, err := queries.NewCourtQueries(store, cache).GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Same(t, view, got)
	})

	t.Run("cache miss loads and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCourtReadStore(ctrl)
		cache := queriesmock.NewMockCourtCache(ctrl)
		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, false),
			store.EXPECT().FindByID(gomock.Any(), int64(3)).Return(view, nil),
			cache.EXPECT().Set(gomock.Any(), view),
		)

		got, err := queries.NewCourtQueries(store, cache).GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing court is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCourtReadStore(ctrl)
		cache := queriesmock.NewMockCourtCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), int64(9)).Return(nil, false)
		store.EXPECT().FindByID(gomock.Any(), int64(9)).
			Return(nil, infra.WrapRepoErr("find court", assert.AnError, infra.KindNotFound))

		_, err := queries.NewCourtQueries(store, cache).GetByID(context.Background(), 9)
		assert.True(t, errs.Is(err, errs.ErrCourtNotFound))
	})
}

func TestScheduleQueriesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockScheduleReadStore(ctrl)
	courtID := int64(2)
	store.EXPECT().List(gomock.Any(), &courtID).Return([]*queries.ScheduleView{{ID: 1, CourtID: 2}}, nil)

	views, err := queries.NewScheduleQueries(store).List(context.Background(), &courtID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(2), views[0].CourtID)
}

func TestPaymentQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPaymentReadStore(ctrl)
	store.EXPECT().FindByID(gomock.Any(), int64(8)).
		Return(nil, infra.WrapRepoErr("find payment", assert.AnError, infra.KindNotFound))

	_, err := queries.NewPaymentQueries(store).GetByID(context.Background(), 8)
	assert.True(t, errs.Is(err, errs.ErrPaymentNotFound))
}
