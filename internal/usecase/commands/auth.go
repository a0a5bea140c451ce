package commands

import (
	"context"
	"log/slog"

	"campus-reserve/internal/domain/user"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/infra"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/pkg/jwt"
	"campus-reserve/internal/pkg/password"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrEmailTaken         = errs.New("email already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	// Register creates a student account. Staff and admin accounts are
	// provisioned out of band.
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	users      queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, users queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, passwordHash, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(passwordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	// Failure to stamp last_login is not worth failing an otherwise valid
	// login over.
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{User: view, AccessToken: token}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	account, err := user.NewUser(email, hash, req.Name, user.RoleStudent)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var view *queries.AuthorizedUserView
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, tx.DB(), sqlc.CreateUserParams{
			Email:        account.Email().String(),
			PasswordHash: account.PasswordHash(),
			Name:         account.Name(),
			Role:         account.Role().String(),
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		view = &queries.AuthorizedUserView{
			ID:       id,
			Email:    account.Email().String(),
			Name:     account.Name(),
			Role:     account.Role().String(),
			IsActive: true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
