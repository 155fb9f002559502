package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Email is unique across all users; the
// uniqueness itself is enforced by the persistence layer.
type User struct {
	id            uuid.UUID
	name          string
	email         Email
	role          Role
	emailVerified bool
	kycVerified   bool
	isActive      bool
	lastLogin     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(name string, email Email, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:       uuid.New(),
		name:     name,
		email:    email,
		role:     role,
		isActive: true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	role Role,
	emailVerified, kycVerified, isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		role:          role,
		emailVerified: emailVerified,
		kycVerified:   kycVerified,
		isActive:      isActive,
		lastLogin:     lastLogin,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) Role() Role            { return u.role }
func (u *User) EmailVerified() bool   { return u.emailVerified }
func (u *User) KYCVerified() bool     { return u.kycVerified }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
