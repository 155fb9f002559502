package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carestay/internal/infra"
	"carestay/internal/infra/cache"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase/shared"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*AuthorizedUserView, string, error)
	List(ctx context.Context, dbtx db.DBTX, after time.Time, afterID uuid.UUID, limit int) ([]UserView, error)
}

type UserList struct {
	Users      []UserView
	NextCursor *string
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	ListUsers(ctx context.Context, afterCursor string, limit int) (*UserList, error)
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
	cache     *cache.Service
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore, cache *cache.Service) UserQueries {
	return &userQueriesImpl{
		uow:       uow,
		readStore: readStore,
		cache:     cache,
	}
}

// GetCurrentUser prefers the cached session snapshot and falls back to the
// read store, refreshing the cache on the way out.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	var cached AuthorizedUserView
	if q.cache.GetUserSession(ctx, userID, &cached) {
		if !cached.IsActive {
			return nil, ErrUserInactive
		}
		return &cached, nil
	}

	var view *AuthorizedUserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		view, err = q.readStore.FindByID(ctx, dbtx, userID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	q.cache.CacheUserSession(ctx, userID, view)
	return view, nil
}

func (q *userQueriesImpl) ListUsers(ctx context.Context, afterCursor string, limit int) (*UserList, error) {
	limit = ValidateLimit(limit)
	after, afterID, err := resolveCursor(afterCursor)
	if err != nil {
		return nil, err
	}

	var users []UserView
	err = q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		users, err = q.readStore.List(ctx, dbtx, after, afterID, limit)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &UserList{Users: users}
	if len(users) == limit {
		last := users[len(users)-1]
		cursor := EncodeAfterCursor(last.CreatedAt, last.ID)
		result.NextCursor = &cursor
	}
	return result, nil
}
