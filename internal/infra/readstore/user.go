package readstore

import (
	"context"
	"time"

	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/pgconv"
	"carestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct{}

func NewUserReadStore() *UserReadStore {
	return &UserReadStore{}
}

const findUserByIDSQL = `
SELECT id, email, name, role, email_verified, kyc_verified, is_active
FROM users WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := dbtx.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&v.ID, &v.Email, &v.Name, &v.Role, &v.EmailVerified, &v.KYCVerified, &v.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

const findUserByEmailSQL = `
SELECT u.id, u.email, u.name, u.role, u.email_verified, u.kyc_verified, u.is_active, c.password_hash
FROM users u
JOIN credentials c ON c.user_id = u.id
WHERE u.email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v            queries.AuthorizedUserView
		passwordHash string
	)
	err := dbtx.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&v.ID, &v.Email, &v.Name, &v.Role, &v.EmailVerified, &v.KYCVerified, &v.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, passwordHash, nil
}

const listUsersSQL = `
SELECT id, email, name, role, is_active, last_login, created_at
FROM users
WHERE (created_at, id) < ($1, $2)
ORDER BY created_at DESC, id DESC
LIMIT $3`

func (r *UserReadStore) List(ctx context.Context, dbtx db.DBTX, after time.Time, afterID uuid.UUID, limit int) ([]queries.UserView, error) {
	rows, err := dbtx.Query(ctx, listUsersSQL, after, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []queries.UserView
	for rows.Next() {
		var (
			v         queries.UserView
			lastLogin pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive, &lastLogin, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		if lastLogin.Valid {
			t := lastLogin.Time
			v.LastLogin = &t
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	return result, nil
}
