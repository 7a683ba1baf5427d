package commands

import (
	"context"

	"padel-booking/internal/domain/reservation"
)

// EventPublisher delivers reservation lifecycle events after commit.
type EventPublisher interface {
	Publish(ctx context.Context, event reservation.Event) error
}

type CourtCacheInvalidator interface {
	Invalidate(ctx context.Context, id int64)
}
