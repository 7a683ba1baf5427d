package reservation

import (
	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/errs"
)

// TimeRange is a window on a single day. Both bounds are inclusive, so ranges
// that only touch at an instant (18:00-19:00 and 19:00-20:00) still overlap.
type TimeRange struct {
	Start civil.Time
	End   civil.Time
}

func NewTimeRange(start, end civil.Time) (TimeRange, error) {
	tr := TimeRange{Start: start, End: end}
	if err := tr.Validate(); err != nil {
		return TimeRange{}, err
	}
	return tr, nil
}

// ParseTimeRange parses both bounds without requiring start to precede end,
// which is all an availability query needs.
func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := civil.ParseTime(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := civil.ParseTime(end)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: s, End: e}, nil
}

// Validate rejects windows whose end precedes their start; a storable range
// must be ordered.
func (tr TimeRange) Validate() error {
	if tr.End.Before(tr.Start) {
		return errs.Mark(ErrInvalidTimeRange, errs.ErrDomainValidation)
	}
	return nil
}

func (tr TimeRange) Overlaps(other TimeRange) bool {
	return !tr.Start.After(other.End) && !tr.End.Before(other.Start)
}

// Slot identifies a court window on a given date.
type Slot struct {
	CourtID int64
	Date    civil.Date
	Window  TimeRange
}

// ParseSlot parses wire-format date and times. Format errors are marked with
// errs.ErrInvalidFormat; ordering of the bounds is left to the caller.
func ParseSlot(courtID int64, date, start, end string) (Slot, error) {
	d, err := civil.ParseDate(date)
	if err != nil {
		return Slot{}, errs.Mark(err, errs.ErrInvalidFormat)
	}
	window, err := ParseTimeRange(start, end)
	if err != nil {
		return Slot{}, errs.Mark(err, errs.ErrInvalidFormat)
	}
	return Slot{CourtID: courtID, Date: d, Window: window}, nil
}

// LockKey is the key serialising writers of the same court and day.
func (s Slot) LockKey() string {
	return "reservation:" + formatID(s.CourtID) + ":" + s.Date.String()
}
