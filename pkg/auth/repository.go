package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository abstracts persistence of accounts.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	SetPassword(ctx context.Context, id int64, passwordHash string) error
}
