package reservation

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBooked    EventType = "reservation.booked"
	EventPaid      EventType = "reservation.paid"
	EventCancelled EventType = "reservation.cancelled"
)

// Event is the lifecycle notification emitted after a committed state change.
type Event struct {
	ID            uuid.UUID `json:"id"`
	Type          EventType `json:"type"`
	ReservationID int64     `json:"reservationId"`
	CourtID       int64     `json:"courtId"`
	UserID        int64     `json:"userId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Status        Status    `json:"status"`
	PaymentID     *int64    `json:"paymentId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewEvent(typ EventType, r *Reservation, at time.Time) Event {
	return Event{
		ID:            uuid.New(),
		Type:          typ,
		ReservationID: r.ID(),
		CourtID:       r.CourtID(),
		UserID:        r.UserID(),
		Date:          r.Date().String(),
		StartTime:     r.Window().Start.String(),
		EndTime:       r.Window().End.String(),
		Status:        r.Status(),
		PaymentID:     r.PaymentID(),
		OccurredAt:    at,
	}
}
