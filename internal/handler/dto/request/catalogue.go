package request

import (
	"padel-booking/internal/pkg/money"
	"padel-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// Full-replace payloads may echo the id; create payloads must not carry one.

type CourtRequest struct {
	ID    *int64       `json:"id"`
	Name  string       `json:"name" binding:"required"`
	Type  *string      `json:"type"`
	Price *money.Money `json:"price" binding:"required"`
}

func (r *CourtRequest) ToInput() (commands.CourtInput, error) {
	var in commands.CourtInput
	err := copier.Copy(&in, r)
	return in, err
}

type CourtPatchRequest struct {
	ID    *int64       `json:"id"`
	Name  *string      `json:"name"`
	Type  *string      `json:"type"`
	Price *money.Money `json:"price"`
}

func (r *CourtPatchRequest) ToPatch() (commands.CourtPatch, error) {
	var p commands.CourtPatch
	err := copier.Copy(&p, r)
	return p, err
}

type ScheduleRequest struct {
	ID        *int64 `json:"id"`
	CourtID   int64  `json:"courtId" binding:"required,gt=0"`
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

func (r *ScheduleRequest) ToInput() (commands.ScheduleInput, error) {
	var in commands.ScheduleInput
	err := copier.Copy(&in, r)
	return in, err
}

type SchedulePatchRequest struct {
	ID        *int64  `json:"id"`
	CourtID   *int64  `json:"courtId" binding:"omitempty,gt=0"`
	Day       *string `json:"day"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

func (r *SchedulePatchRequest) ToPatch() (commands.SchedulePatch, error) {
	var p commands.SchedulePatch
	err := copier.Copy(&p, r)
	return p, err
}

// UserRequest serves create, replace and patch: every field is optional.
type UserRequest struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (r *UserRequest) ToInput() (commands.UserInput, error) {
	var in commands.UserInput
	err := copier.Copy(&in, r)
	return in, err
}
