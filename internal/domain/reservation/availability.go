package reservation

import (
	"context"

	"padel-booking/internal/pkg/civil"
)

// OverlapFinder answers whether a blocking reservation on courtID/date shares
// at least one instant with window.
type OverlapFinder interface {
	ExistsOverlapping(ctx context.Context, courtID int64, date civil.Date, window TimeRange) (bool, error)
}

type AvailabilityChecker struct {
	finder OverlapFinder
}

func NewAvailabilityChecker(finder OverlapFinder) *AvailabilityChecker {
	return &AvailabilityChecker{finder: finder}
}

func (c *AvailabilityChecker) IsAvailable(ctx context.Context, slot Slot) (bool, error) {
	taken, err := c.finder.ExistsOverlapping(ctx, slot.CourtID, slot.Date, slot.Window)
	if err != nil {
		return false, err
	}
	return !taken, nil
}
