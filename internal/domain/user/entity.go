package user

import (
	"strings"
	"time"
	"unicode/utf8"

	"padel-booking/internal/pkg/errs"
)

// User is a person who books courts. Every contact field is optional.
type User struct {
	id        int64
	name      *string
	email     *Email
	phone     *string
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name, email, phone *string) (*User, error) {
	u := &User{}
	if err := u.apply(name, email, phone); err != nil {
		return nil, err
	}
	return u, nil
}

func ReconstructUser(id int64, name *string, email *string, phone *string, createdAt, updatedAt time.Time) *User {
	var e *Email
	if email != nil {
		e = &Email{value: *email}
	}
	return &User{
		id:        id,
		name:      name,
		email:     e,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) Update(name, email, phone *string) error {
	return u.apply(name, email, phone)
}

func (u *User) apply(name, email, phone *string) error {
	name = trimOptional(name)
	if name != nil && utf8.RuneCountInString(*name) > MaxNameLength {
		return errs.Mark(ErrNameTooLong, errs.ErrDomainValidation)
	}
	phone = trimOptional(phone)
	if phone != nil && len(*phone) > MaxPhoneLength {
		return errs.Mark(ErrPhoneTooLong, errs.ErrDomainValidation)
	}

	var e *Email
	if email = trimOptional(email); email != nil {
		parsed, err := NewEmail(*email)
		if err != nil {
			return err
		}
		e = &parsed
	}

	u.name = name
	u.email = e
	u.phone = phone
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (u *User) ID() int64      { return u.id }
func (u *User) Name() *string  { return u.name }
func (u *User) Phone() *string { return u.phone }

func (u *User) Email() *string {
	if u.email == nil {
		return nil
	}
	v := u.email.Value()
	return &v
}

func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
