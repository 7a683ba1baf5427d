package court

import (
	"strings"
	"time"
	"unicode/utf8"

	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/money"
)

const MaxNameLength = 255

var (
	ErrEmptyName   = errs.New("court name is required")
	ErrNameTooLong = errs.New("court name is too long")
	ErrTypeTooLong = errs.New("court type is too long")
)

// Court is a rentable padel playing surface.
type Court struct {
	id        int64
	name      string
	kind      *string
	price     money.Money
	createdAt time.Time
	updatedAt time.Time
}

func NewCourt(name string, kind *string, price money.Money) (*Court, error) {
	c := &Court{}
	if err := c.apply(name, kind, price); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCourt(id int64, name string, kind *string, price money.Money, createdAt, updatedAt time.Time) *Court {
	return &Court{
		id:        id,
		name:      name,
		kind:      kind,
		price:     price,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces every mutable field, validating like NewCourt.
func (c *Court) Update(name string, kind *string, price money.Money) error {
	return c.apply(name, kind, price)
}

func (c *Court) apply(name string, kind *string, price money.Money) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.Mark(ErrEmptyName, errs.ErrDomainValidation)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errs.Mark(ErrNameTooLong, errs.ErrDomainValidation)
	}
	if kind != nil {
		trimmed := strings.TrimSpace(*kind)
		if utf8.RuneCountInString(trimmed) > MaxNameLength {
			return errs.Mark(ErrTypeTooLong, errs.ErrDomainValidation)
		}
		if trimmed == "" {
			kind = nil
		} else {
			kind = &trimmed
		}
	}
	c.name = name
	c.kind = kind
	c.price = price
	return nil
}

func (c *Court) ID() int64            { return c.id }
func (c *Court) Name() string         { return c.name }
func (c *Court) Type() *string        { return c.kind }
func (c *Court) Price() money.Money   { return c.price }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
