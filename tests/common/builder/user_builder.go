//go:build unit || e2e

package builder

import (
	"carestay/internal/domain/user"
	reqdto "carestay/internal/handler/dto/request"
	"carestay/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     string
	Password string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    "test@example.com",
		Role:     "customer",
		Password: "password123",
		IsActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(b.Name, email, role)
}

func (b *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:            b.ID,
		Email:         b.Email,
		Name:          b.Name,
		Role:          b.Role,
		EmailVerified: false,
		KYCVerified:   false,
		IsActive:      b.IsActive,
	}
}

func (b *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     b.Name,
		Email:    b.Email,
		Password: b.Password,
		Role:     b.Role,
	}
}
