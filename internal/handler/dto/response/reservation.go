package response

import (
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/usecase/queries"
)

type ReservationResponse struct {
	ID        int64        `json:"id"`
	Date      string       `json:"date" example:"2025-12-06"`
	StartTime string       `json:"startTime" example:"18:00"`
	EndTime   string       `json:"endTime" example:"19:00"`
	UserID    int64        `json:"userId"`
	CourtID   int64        `json:"courtId"`
	PaymentID *int64       `json:"paymentId"`
	Status    string       `json:"status" example:"booked"`
	Amount    *money.Money `json:"amount" swaggertype:"number"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        v.ID,
		Date:      v.Date.String(),
		StartTime: v.StartTime.String(),
		EndTime:   v.EndTime.String(),
		UserID:    v.UserID,
		CourtID:   v.CourtID,
		PaymentID: v.PaymentID,
		Status:    v.Status,
		Amount:    v.Amount,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromReservationView(v))
	}
	return out
}
