package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"padel-booking/internal/infra/repository"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetry = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

// backoff doubles per attempt and adds up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.base
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int64N(spread))
	}
	return wait
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{pool: pool, q: q, retry: defaultRetry}
}

// Within runs fn in a READ COMMITTED transaction. Serialization failures and
// deadlocks re-run fn from scratch on a fresh transaction.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		if attempt == u.retry.maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt owns exactly one pgx transaction so no deferred rollback outlives it.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err = fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

// pgTx builds repositories on first use, all bound to the same transaction.
type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	reservations shared.ReservationRepository
	payments     shared.PaymentRepository
	courts       shared.CourtRepository
	schedules    shared.ScheduleRepository
	users        shared.UserRepository
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservations == nil {
		t.reservations = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservations
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.payments == nil {
		t.payments = repository.NewPaymentRepository(t.q, t.dbtx)
	}
	return t.payments
}

func (t *pgTx) Courts() shared.CourtRepository {
	if t.courts == nil {
		t.courts = repository.NewCourtRepository(t.q, t.dbtx)
	}
	return t.courts
}

func (t *pgTx) Schedules() shared.ScheduleRepository {
	if t.schedules == nil {
		t.schedules = repository.NewScheduleRepository(t.q, t.dbtx)
	}
	return t.schedules
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.users
}
