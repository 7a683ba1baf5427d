package queries

import (
	"time"

	"padel-booking/internal/pkg/civil"
	"padel-booking/internal/pkg/money"
)

// ReservationView is the read model returned by every reservation operation.
// PaymentID, Amount and PaidAt stay nil until a payment is attached.
type ReservationView struct {
	ID        int64
	Date      civil.Date
	StartTime civil.Time
	EndTime   civil.Time
	UserID    int64
	CourtID   int64
	Status    string
	PaymentID *int64
	Amount    *money.Money
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourtView struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Type      *string     `json:"type"`
	Price     money.Money `json:"price"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type ScheduleView struct {
	ID        int64
	CourtID   int64
	Day       string
	StartTime civil.Time
	EndTime   civil.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserView struct {
	ID        int64
	Name      *string
	Email     *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentView struct {
	ID            int64
	ReservationID int64
	PaidAt        time.Time
	Amount        money.Money
}
