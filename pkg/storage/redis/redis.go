// Package redis keeps revoked token ids in Redis until they expire.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:"

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Revoker implements auth.Revoker with one expiring key per token id.
type Revoker struct {
	client *goredis.Client
	now    func() time.Time
}

func NewRevoker(client *goredis.Client) *Revoker {
	return &Revoker{client: client, now: time.Now}
}

func (r *Revoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err()
}

func (r *Revoker) Revoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
