package money

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount: expected a decimal with at most two fraction digits")
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrAmountTooLarge = errors.New("amount is too large")
)

// maxUnits keeps units*100 + 99 within int64.
const maxUnits = (math.MaxInt64 - 99) / 100

// Money is a non-negative amount kept in cents. JSON encodes it as a number
// with exactly two fraction digits (0.00).
type Money struct {
	cents int64
}

func Zero() Money { return Money{} }

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func MustFromCents(cents int64) Money {
	m, err := FromCents(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse reads "12", "12.5" or "12.50".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return Money{}, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	if strings.Trim(whole, "0123456789") != "" {
		return Money{}, ErrInvalidAmount
	}
	units, err := strconv.ParseUint(whole, 10, 64)
	if err != nil || units > maxUnits {
		return Money{}, ErrAmountTooLarge
	}
	cents, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{cents: int64(units)*100 + int64(cents)}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) Equal(o Money) bool { return m.cents == o.cents }

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal string.
func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
