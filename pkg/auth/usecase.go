package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes admin authentication.
type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (AuthResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	// EnsureAdmin creates the owner account on first start, or resets its
	// password when it changed in configuration.
	EnsureAdmin(ctx context.Context, username, password, email string) (User, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo    UserRepository
	tokens  TokenGenerator
	revoker Revoker
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator, revoker Revoker) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, revoker: revoker}
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password, email string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}
	existing, err := s.repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) == nil {
			return existing, nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		if err := s.repo.SetPassword(ctx, existing.ID, string(hash)); err != nil {
			return User{}, err
		}
		existing.PasswordHash = string(hash)
		return existing, nil
	case !errors.Is(err, ErrNotFound):
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	return s.repo.Create(ctx, User{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	})
}

func (s *authService) Login(ctx context.Context, username, password string) (AuthResult, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.revoker == nil || tokenID == "" {
		return nil
	}
	return s.revoker.Revoke(ctx, tokenID, expiresAt)
}
