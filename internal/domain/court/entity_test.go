//go:build unit

package court_test

import (
	"strings"
	"testing"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/money"
	"padel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourt(t *testing.T) {
	blank := "   "
	padded := " outdoor "

	tests := []struct {
		name     string
		mutate   func(*builder.CourtBuilder)
		errIs    error
		wantName string
		wantType *string
	}{
		{
			name:     "valid court",
			wantName: "Court 1",
			wantType: strPtr("indoor"),
		},
		{
			name:     "name is trimmed",
			mutate:   func(b *builder.CourtBuilder) { b.WithName("  Central  ") },
			wantName: "Central",
			wantType: strPtr("indoor"),
		},
		{
			name:     "blank type is dropped",
			mutate:   func(b *builder.CourtBuilder) { b.WithType(&blank) },
			wantName: "Court 1",
		},
		{
			name:     "type is trimmed",
			mutate:   func(b *builder.CourtBuilder) { b.WithType(&padded) },
			wantName: "Court 1",
			wantType: strPtr("outdoor"),
		},
		{
			name:   "empty name",
			mutate: func(b *builder.CourtBuilder) { b.WithName(" ") },
			errIs:  court.ErrEmptyName,
		},
		{
			name:   "name too long",
			mutate: func(b *builder.CourtBuilder) { b.WithName(strings.Repeat("x", court.MaxNameLength+1)) },
			errIs:  court.ErrNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewCourtBuilder()
			if tt.mutate != nil {
				tt.mutate(b)
			}
			c, err := b.BuildDomain()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name())
			assert.Equal(t, tt.wantType, c.Type())
		})
	}
}

func TestCourtUpdate(t *testing.T) {
	c := builder.NewCourtBuilder().BuildStored()

	require.NoError(t, c.Update("Renamed", nil, money.MustFromCents(1000)))
	assert.Equal(t, "Renamed", c.Name())
	assert.Nil(t, c.Type())
	assert.Equal(t, int64(1000), c.Price().Cents())
	assert.Equal(t, int64(1), c.ID())

	err := c.Update("", nil, money.Zero())
	assert.ErrorIs(t, err, court.ErrEmptyName)
	assert.Equal(t, "Renamed", c.Name())
}

func strPtr(s string) *string { return &s }
