package memory

import (
	"context"
	"sync"
	"time"
)

// Revoker is the in-process auth.Revoker used without Redis.
type Revoker struct {
	mu    sync.Mutex
	until map[string]time.Time
	now   func() time.Time
}

func NewRevoker() *Revoker {
	return &Revoker{until: map[string]time.Time{}, now: time.Now}
}

func (r *Revoker) Revoke(_ context.Context, tokenID string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for id, t := range r.until {
		if !t.After(now) {
			delete(r.until, id)
		}
	}
	if until.After(now) {
		r.until[tokenID] = until
	}
	return nil
}

func (r *Revoker) Revoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.until[tokenID]
	return ok && t.After(r.now()), nil
}
