//go:build unit || e2e

package builder

import (
	"time"

	"padel-booking/internal/domain/user"
	sqlc "padel-booking/internal/infra/sqlc/generated"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"
)

type UserBuilder struct {
	ID    int64
	Name  *string
	Email *string
	Phone *string
}

func NewUserBuilder() *UserBuilder {
	name := "Ana Pérez"
	email := "ana@example.com"
	phone := "+34 600 000 000"
	return &UserBuilder{
		ID:    1,
		Name:  &name,
		Email: &email,
		Phone: &phone,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.Name, u.Email, u.Phone)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:        u.ID,
		Name:      pgconv.StringPtrToPgtype(u.Name),
		Email:     pgconv.StringPtrToPgtype(u.Email),
		Phone:     pgconv.StringPtrToPgtype(u.Phone),
		CreatedAt: pgconv.TimeToPgtype(now),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	now := time.Now()
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name *string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email *string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPhone(phone *string) *UserBuilder {
	u.Phone = phone
	return u
}
