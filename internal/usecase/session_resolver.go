package usecase

import (
	"context"
	"errors"

	"carestay/internal/domain/user"
	"carestay/internal/infra/cache"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/errs"
	"carestay/internal/pkg/jwt"
	"carestay/internal/usecase/queries"
	"carestay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSessionInvalid = errs.New("session invalid")
	ErrSessionExpired = errs.New("session expired")
)

// Session is the authenticated identity attached to a request.
type Session struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   user.Role
}

// SessionResolver turns a bearer token into a Session. Token validation is
// local; the user snapshot comes from the session cache with a read-store
// fallback, so deactivated users are cut off even while their token is
// still unexpired.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*Session, error)
}

type sessionResolverImpl struct {
	jwtService *jwt.Service
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	cache      *cache.Service
}

func NewSessionResolver(
	jwtService *jwt.Service,
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	cache *cache.Service,
) SessionResolver {
	return &sessionResolverImpl{
		jwtService: jwtService,
		uow:        uow,
		readStore:  readStore,
		cache:      cache,
	}
}

func (s *sessionResolverImpl) Resolve(ctx context.Context, token string) (*Session, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, errs.Mark(err, ErrSessionExpired)
		}
		return nil, errs.Mark(err, ErrSessionInvalid)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, ErrSessionInvalid
	}

	view, err := s.lookupUser(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionInvalid)
	}
	if !view.IsActive {
		return nil, ErrSessionInvalid
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionInvalid)
	}

	return &Session{
		UserID: view.ID,
		Email:  view.Email,
		Name:   view.Name,
		Role:   role,
	}, nil
}

func (s *sessionResolverImpl) lookupUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	var cached queries.AuthorizedUserView
	if s.cache.GetUserSession(ctx, userID, &cached) {
		return &cached, nil
	}

	var view *queries.AuthorizedUserView
	err := s.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		view, err = s.readStore.FindByID(ctx, dbtx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.cache.CacheUserSession(ctx, userID, view)
	return view, nil
}
