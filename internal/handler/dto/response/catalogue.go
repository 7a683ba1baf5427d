package response

import (
	"time"

	"padel-booking/internal/pkg/money"
	"padel-booking/internal/usecase/queries"
)

type CourtResponse struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Type  *string     `json:"type"`
	Price money.Money `json:"price" swaggertype:"number"`
}

func FromCourtView(v *queries.CourtView) *CourtResponse {
	return &CourtResponse{ID: v.ID, Name: v.Name, Type: v.Type, Price: v.Price}
}

func FromCourtViews(views []*queries.CourtView) []*CourtResponse {
	out := make([]*CourtResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCourtView(v))
	}
	return out
}

type ScheduleResponse struct {
	ID        int64  `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CourtID   int64  `json:"courtId"`
}

func FromScheduleView(v *queries.ScheduleView) *ScheduleResponse {
	return &ScheduleResponse{
		ID:        v.ID,
		Day:       v.Day,
		StartTime: v.StartTime.String(),
		EndTime:   v.EndTime.String(),
		CourtID:   v.CourtID,
	}
}

func FromScheduleViews(views []*queries.ScheduleView) []*ScheduleResponse {
	out := make([]*ScheduleResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromScheduleView(v))
	}
	return out
}

type UserResponse struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{ID: v.ID, Name: v.Name, Email: v.Email, Phone: v.Phone}
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromUserView(v))
	}
	return out
}

type PaymentResponse struct {
	ID            int64       `json:"id"`
	ReservationID int64       `json:"reservationId"`
	Date          time.Time   `json:"date"`
	Amount        money.Money `json:"amount" swaggertype:"number"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{ID: v.ID, ReservationID: v.ReservationID, Date: v.PaidAt, Amount: v.Amount}
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromPaymentView(v))
	}
	return out
}
