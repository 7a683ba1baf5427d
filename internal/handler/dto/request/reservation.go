package request

import (
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreateReservationRequest struct {
	UserID    int64  `json:"userId" binding:"required,gt=0"`
	CourtID   int64  `json:"courtId" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

func (r *CreateReservationRequest) ToInput() (commands.RegisterReservationInput, error) {
	var in commands.RegisterReservationInput
	err := copier.Copy(&in, r)
	return in, err
}

type ValidateAvailabilityRequest struct {
	CourtID   int64  `json:"courtId" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// PayReservationRequest is optional; an empty body pays 0.00.
type PayReservationRequest struct {
	Amount *money.Money `json:"amount"`
}
