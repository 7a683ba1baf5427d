//go:build unit

package civil_test

import (
	"testing"
	"time"

	"padel-booking/internal/pkg/civil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := civil.ParseDate("2025-12-06")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-06", d.String())
	assert.Equal(t, time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC), d.Time())

	for _, bad := range []string{"", "2025-13-01", "2025-02-30", "06-12-2025", "2025-12-06T10:00:00Z"} {
		_, err := civil.ParseDate(bad)
		assert.ErrorIs(t, err, civil.ErrInvalidDate, bad)
	}

	assert.Equal(t, "", civil.Date{}.String())
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	d := civil.DateOf(time.Date(2025, 12, 6, 23, 30, 0, 0, loc))
	assert.Equal(t, "2025-12-06", d.String())
	assert.True(t, d.Equal(civil.MustParseDate("2025-12-06")))
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "18:00", want: "18:00"},
		{in: "09:05", want: "09:05"},
		{in: "18:00:00", want: "18:00"},
		{in: "18:00:30", want: "18:00:30"},
		{in: "23:59:59", want: "23:59:59"},
		{in: "24:00", err: true},
		{in: "9:05", err: true},
		{in: "18h00", err: true},
		{in: "", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := civil.ParseTime(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, civil.ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeOrdering(t *testing.T) {
	a := civil.MustParseTime("18:00")
	b := civil.MustParseTime("18:00:01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(civil.MustParseTime("18:00:00")))
}

func TestMicroseconds(t *testing.T) {
	tm := civil.MustParseTime("18:30:15")
	assert.Equal(t, tm, civil.TimeFromMicroseconds(tm.Microseconds()))
	assert.Equal(t, "18:30:15", civil.TimeFromMicroseconds(tm.Microseconds()+999).String())

	_, err := civil.NewTime(24, 0, 0)
	assert.ErrorIs(t, err, civil.ErrInvalidTime)
}
