//go:build unit

package repository_test

import (
	"context"
	"testing"

	"padel-booking/internal/infra"
	"padel-booking/internal/infra/repository"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/tests/common/builder"
	repositorymock "padel-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCourtRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("find decodes price and optional type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCourtWriteQueries(ctrl)
		q.EXPECT().GetCourtByID(gomock.Any(), gomock.Any(), int64(2)).
			Return(builder.NewCourtBuilder().WithID(2).WithType(nil).WithPrice(1850).BuildInfra(), nil)

		c, err := repository.NewCourtRepository(q, nil).FindByID(ctx, 2)

		require.NoError(t, err)
		assert.Nil(t, c.Type())
		assert.Equal(t, "18.50", c.Price().String())
	})

	t.Run("find maps no rows to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCourtWriteQueries(ctrl)
		q.EXPECT().GetCourtByID(gomock.Any(), gomock.Any(), int64(2)).Return(sqlc.Courts{}, pgx.ErrNoRows)

		_, err := repository.NewCourtRepository(q, nil).FindByID(ctx, 2)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("update of a vanished row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCourtWriteQueries(ctrl)
		q.EXPECT().UpdateCourt(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repository.NewCourtRepository(q, nil).Update(ctx, builder.NewCourtBuilder().BuildStored())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("delete of a referenced court is a foreign key violation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCourtWriteQueries(ctrl)
		q.EXPECT().DeleteCourt(gomock.Any(), gomock.Any(), int64(2)).
			Return(int64(0), &pgconn.PgError{Code: "23503", ConstraintName: "reservations_court_id_fkey"})

		err := repository.NewCourtRepository(q, nil).Delete(ctx, 2)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("null columns decode to nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockUserWriteQueries(ctrl)
		q.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), int64(3)).
			Return(builder.NewUserBuilder().WithID(3).WithEmail(nil).WithPhone(nil).BuildInfra(), nil)

		u, err := repository.NewUserRepository(q, nil).FindByID(ctx, 3)

		require.NoError(t, err)
		require.NotNil(t, u.Name())
		assert.Equal(t, "Ana Pérez", *u.Name())
		assert.Nil(t, u.Email())
		assert.Nil(t, u.Phone())
	})

	t.Run("delete of a missing user is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockUserWriteQueries(ctrl)
		q.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), int64(3)).Return(int64(0), nil)

		err := repository.NewUserRepository(q, nil).Delete(ctx, 3)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
