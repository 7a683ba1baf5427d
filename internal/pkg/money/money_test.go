//go:build unit

package money_test

import (
	"encoding/json"
	"testing"

	"padel-booking/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		cents int64
		err   error
	}{
		{in: "12", cents: 1200},
		{in: "12.5", cents: 1250},
		{in: "12.50", cents: 1250},
		{in: "0.05", cents: 5},
		{in: "0", cents: 0},
		{in: "12.505", err: money.ErrInvalidAmount},
		{in: "12.", err: money.ErrInvalidAmount},
		{in: ".5", err: money.ErrInvalidAmount},
		{in: "abc", err: money.ErrInvalidAmount},
		{in: "", err: money.ErrInvalidAmount},
		{in: "-1.00", err: money.ErrNegativeAmount},
		{in: "+1", err: money.ErrInvalidAmount},
		{in: "92233720368547757.99", cents: 9223372036854775799},
		{in: "92233720368547758", err: money.ErrAmountTooLarge},
		{in: "100000000000000000", err: money.ErrAmountTooLarge},
		{in: "99999999999999999999999", err: money.ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := money.Parse(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cents, m.Cents())
		})
	}
}

func TestJSON(t *testing.T) {
	t.Run("encodes two fraction digits", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Amount money.Money `json:"amount"`
		}{Amount: money.MustFromCents(1250)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":12.50}`, string(b))
		assert.Contains(t, string(b), "12.50")
	})

	t.Run("zero is 0.00", func(t *testing.T) {
		assert.Equal(t, "0.00", money.Zero().String())
	})

	t.Run("decodes numbers and strings", func(t *testing.T) {
		var body struct {
			A money.Money  `json:"a"`
			B money.Money  `json:"b"`
			C *money.Money `json:"c"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a":12.5,"b":"3.20","c":null}`), &body))
		assert.Equal(t, int64(1250), body.A.Cents())
		assert.Equal(t, int64(320), body.B.Cents())
		assert.Nil(t, body.C)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		var m money.Money
		err := json.Unmarshal([]byte(`-1`), &m)
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("rejects amounts that overflow cents", func(t *testing.T) {
		var m money.Money
		err := json.Unmarshal([]byte(`100000000000000000`), &m)
		assert.ErrorIs(t, err, money.ErrAmountTooLarge)
		assert.Zero(t, m.Cents())
	})
}

func TestFromCents(t *testing.T) {
	_, err := money.FromCents(-1)
	assert.ErrorIs(t, err, money.ErrNegativeAmount)
	assert.Panics(t, func() { money.MustFromCents(-1) })
}
