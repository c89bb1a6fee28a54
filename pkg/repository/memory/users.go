// Package memory holds in-process repositories used when no database is
// configured and in tests. All types are safe for concurrent use.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/artem13815/portfolio/pkg/auth"
	"github.com/artem13815/portfolio/pkg/profile"
)

// UserRepository implements auth.UserRepository and profile.Repository:
// the profile is stored on the user record like in the users table.
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]auth.User
	prof   map[int64]profile.Profile
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[int64]auth.User{}, prof: map[int64]profile.Profile{}}
}

func (r *UserRepository) Create(_ context.Context, u auth.User) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return auth.User{}, auth.ErrUserAlreadyExists
		}
	}
	r.nextID++
	u.ID = r.nextID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.users[u.ID] = u
	r.prof[u.ID] = profile.Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.CreatedAt,
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (r *UserRepository) SetPassword(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return auth.ErrNotFound
	}
	u.PasswordHash = hash
	r.users[id] = u
	return nil
}

func (r *UserRepository) Get(_ context.Context, userID int64) (profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prof[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *UserRepository) Update(_ context.Context, p profile.Profile) (profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.prof[p.ID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	p.Username = cur.Username
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.prof[p.ID] = p
	if u, ok := r.users[p.ID]; ok {
		u.Email = p.Email
		r.users[p.ID] = u
	}
	return p, nil
}
