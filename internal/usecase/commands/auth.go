package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"carestay/internal/domain/supplier"
	"carestay/internal/domain/user"
	reqdto "carestay/internal/handler/dto/request"
	"carestay/internal/infra"
	"carestay/internal/infra/cache"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/errs"
	"carestay/internal/pkg/jwt"
	"carestay/internal/pkg/password"
	"carestay/internal/usecase/queries"
	"carestay/internal/usecase/shared"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	cache      *cache.Service
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	cache *cache.Service,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		cache:      cache,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error) {
	newUser, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hashed, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), newUser); err != nil {
			return err
		}
		if err := tx.Users().CreateCredential(ctx, tx.DB(), newUser.ID(), hashed); err != nil {
			return err
		}

		if newUser.Role() == user.RoleSupplier {
			legalName := req.Name
			if req.LegalName != nil {
				legalName = *req.LegalName
			}
			sup, err := supplier.NewSupplier(newUser.ID(), legalName, req.TaxID, req.PayoutAccountRef)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			return tx.Suppliers().Create(ctx, tx.DB(), sup)
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, err
	}

	return &queries.AuthorizedUserView{
		ID:            newUser.ID(),
		Email:         newUser.Email().Value(),
		Name:          newUser.Name(),
		Role:          newUser.Role().String(),
		EmailVerified: newUser.EmailVerified(),
		KYCVerified:   newUser.KYCVerified(),
		IsActive:      newUser.IsActive(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.cache.CacheUserSession(ctx, userView.ID, userView)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userView.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userView.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", userView.ID, "error", err.Error())
		// Continue without failing - login was successful, only last_login update failed
	}

	return &LoginResult{
		User: userView,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	userView, err := a.findUser(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	a.cache.InvalidateUserData(ctx, userID)
	return nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	var (
		userView       *queries.AuthorizedUserView
		hashedPassword string
	)
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		userView, hashedPassword, err = a.readStore.FindByEmail(ctx, dbtx, credentials.Email().Value())
		return err
	})
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}

func (a *authCommandsImpl) findUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	var userView *queries.AuthorizedUserView
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		userView, err = a.readStore.FindByID(ctx, dbtx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return userView, nil
}
