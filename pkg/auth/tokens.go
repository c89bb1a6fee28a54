package auth

import (
	"context"
	"time"
)

// TokenGenerator abstracts token creation (e.g., JWT).
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// Revoker remembers logged out token ids until they would have expired anyway.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	Revoked(ctx context.Context, tokenID string) (bool, error)
}
