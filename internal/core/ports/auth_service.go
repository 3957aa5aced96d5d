package ports

import (
	"context"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Username string
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService defines registration, credential validation and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Validate checks a username/password pair against stored credentials.
	// "no such user" and "wrong password" are indistinguishable to callers:
	// both return domain.ErrInvalidCredentials.
	Validate(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
