package user

import (
	"regexp"
	"strings"

	"padel-booking/internal/pkg/errs"
)

const (
	MaxNameLength  = 255
	MaxEmailLength = 255
	MaxPhoneLength = 64
)

var (
	ErrInvalidEmail = errs.New("invalid email format")
	ErrNameTooLong  = errs.New("user name is too long")
	ErrPhoneTooLong = errs.New("user phone is too long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxEmailLength || !emailRegex.MatchString(s) {
		return Email{}, errs.Mark(ErrInvalidEmail, errs.ErrDomainValidation)
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
