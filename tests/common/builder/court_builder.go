//go:build unit || e2e

package builder

import (
	"time"

	"padel-booking/internal/domain/court"
	reqdto "padel-booking/internal/handler/dto/request"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"
)

type CourtBuilder struct {
	ID    int64
	Name  string
	Type  *string
	Price money.Money
}

func NewCourtBuilder() *CourtBuilder {
	kind := "indoor"
	return &CourtBuilder{
		ID:    1,
		Name:  "Court 1",
		Type:  &kind,
		Price: money.MustFromCents(2500),
	}
}

func (b *CourtBuilder) With(mutate func(*CourtBuilder)) *CourtBuilder {
	mutate(b)
	return b
}

func (b *CourtBuilder) BuildDomain() (*court.Court, error) {
	return court.NewCourt(b.Name, b.Type, b.Price)
}

func (b *CourtBuilder) BuildStored() *court.Court {
	now := time.Now()
	return court.ReconstructCourt(b.ID, b.Name, b.Type, b.Price, now, now)
}

func (b *CourtBuilder) BuildInfra() sqlc.Courts {
	now := time.Now()
	return sqlc.Courts{
		ID:         b.ID,
		Name:       b.Name,
		Type:       pgconv.StringPtrToPgtype(b.Type),
		PriceCents: b.Price.Cents(),
		CreatedAt:  pgconv.TimeToPgtype(now),
		UpdatedAt:  pgconv.TimeToPgtype(now),
	}
}

func (b *CourtBuilder) BuildView() *queries.CourtView {
	now := time.Now().UTC().Truncate(time.Second)
	return &queries.CourtView{
		ID:        b.ID,
		Name:      b.Name,
		Type:      b.Type,
		Price:     b.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *CourtBuilder) BuildRequest() reqdto.CourtRequest {
	price := b.Price
	return reqdto.CourtRequest{
		Name:  b.Name,
		Type:  b.Type,
		Price: &price,
	}
}

func (b *CourtBuilder) WithID(id int64) *CourtBuilder {
	b.ID = id
	return b
}

func (b *CourtBuilder) WithName(name string) *CourtBuilder {
	b.Name = name
	return b
}

func (b *CourtBuilder) WithType(kind *string) *CourtBuilder {
	b.Type = kind
	return b
}

func (b *CourtBuilder) WithPrice(cents int64) *CourtBuilder {
	b.Price = money.MustFromCents(cents)
	return b
}
