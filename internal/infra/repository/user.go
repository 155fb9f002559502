package repository

import (
	"context"

	"carestay/internal/domain/user"
	"carestay/internal/infra"
	"carestay/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (id, name, email, role, email_verified, kyc_verified, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	_, err := dbtx.Exec(ctx, createUserSQL,
		u.ID(), u.Name(), u.Email().Value(), u.Role().String(),
		u.EmailVerified(), u.KYCVerified(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

const createCredentialSQL = `
INSERT INTO credentials (user_id, password_hash)
VALUES ($1, $2)`

func (r *UserRepository) CreateCredential(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, passwordHash string) error {
	_, err := dbtx.Exec(ctx, createCredentialSQL, userID, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to create credential", err)
	}
	return nil
}

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, updateLastLoginSQL, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
