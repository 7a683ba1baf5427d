package schedule

import (
	"strings"
	"time"

	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/errs"
)

const MaxDayLength = 32

var (
	ErrEmptyDay         = errs.New("schedule day is required")
	ErrDayTooLong       = errs.New("schedule day is too long")
	ErrInvalidCourt     = errs.New("schedule must belong to a court")
	ErrInvalidTimeRange = errs.New("schedule start time must be before end time")
)

// Schedule is a recurring weekly availability window declared for a court.
// Registration does not consult it.
type Schedule struct {
	id        int64
	courtID   int64
	day       string
	start     civil.Time
	end       civil.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewSchedule(courtID int64, day string, start, end civil.Time) (*Schedule, error) {
	s := &Schedule{}
	if err := s.apply(courtID, day, start, end); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructSchedule(id, courtID int64, day string, start, end civil.Time, createdAt, updatedAt time.Time) *Schedule {
	return &Schedule{
		id:        id,
		courtID:   courtID,
		day:       day,
		start:     start,
		end:       end,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Schedule) Update(courtID int64, day string, start, end civil.Time) error {
	return s.apply(courtID, day, start, end)
}

func (s *Schedule) apply(courtID int64, day string, start, end civil.Time) error {
	day = strings.TrimSpace(day)
	switch {
	case courtID <= 0:
		return errs.Mark(ErrInvalidCourt, errs.ErrDomainValidation)
	case day == "":
		return errs.Mark(ErrEmptyDay, errs.ErrDomainValidation)
	case len(day) > MaxDayLength:
		return errs.Mark(ErrDayTooLong, errs.ErrDomainValidation)
	case !start.Before(end):
		return errs.Mark(ErrInvalidTimeRange, errs.ErrDomainValidation)
	}
	s.courtID = courtID
	s.day = day
	s.start = start
	s.end = end
	return nil
}

func (s *Schedule) ID() int64             { return s.id }
func (s *Schedule) CourtID() int64        { return s.courtID }
func (s *Schedule) Day() string           { return s.day }
func (s *Schedule) StartTime() civil.Time { return s.start }
func (s *Schedule) EndTime() civil.Time   { return s.end }
func (s *Schedule) CreatedAt() time.Time  { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time  { return s.updatedAt }
