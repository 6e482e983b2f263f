package commands

import (
	"context"

	"lodging-service/internal/domain/auth"
	"lodging-service/internal/pkg/errs"
	"lodging-service/internal/pkg/jwt"
	"lodging-service/internal/pkg/password"
	"lodging-service/internal/usecase/queries"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type SignInResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

type AuthCommands interface {
	SignIn(ctx context.Context, email, plainPassword string) (*SignInResult, error)
}

type authCommandsImpl struct {
	readStore  UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) SignIn(ctx context.Context, email, plainPassword string) (*SignInResult, error) {
	credentials, err := auth.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || userView == nil {
		// same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(userView.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &SignInResult{
		Token: token,
		User:  userView,
	}, nil
}
