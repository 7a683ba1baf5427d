package reservation

import "padel-booking/internal/pkg/errs"

type Status string

const (
	StatusBooked    Status = "booked"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errs.Mark(ErrInvalidStatus, errs.ErrDomainValidation)
	}
	return status, nil
}

// BlocksCourt reports whether a reservation in this status occupies its window.
func (s Status) BlocksCourt() bool {
	return s != StatusCancelled
}
