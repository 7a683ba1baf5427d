//go:build unit

package uow

import (
	"testing"
	"time"

	"padel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"wrapped deadlock", errs.Wrap(&pgconn.PgError{Code: "40P01"}, "lock slot"), true},
		{"exclusion violation", &pgconn.PgError{Code: "23P01"}, false},
		{"plain error", errs.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestRetryPolicyBackoff(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		floor := time.Duration(1<<attempt) * p.base
		got := p.backoff(attempt)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}

func TestRetryPolicyBackoffZeroBase(t *testing.T) {
	assert.Equal(t, time.Duration(0), retryPolicy{}.backoff(2))
}
