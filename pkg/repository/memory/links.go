package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/artem13815/portfolio/pkg/profile"
)

type LinkRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]profile.SocialLink
}

func NewLinkRepository() *LinkRepository {
	return &LinkRepository{items: map[int64]profile.SocialLink{}}
}

func (r *LinkRepository) ListLinks(_ context.Context, userID int64) ([]profile.SocialLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []profile.SocialLink{}
	for _, l := range r.items {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *LinkRepository) CreateLink(_ context.Context, l profile.SocialLink) (profile.SocialLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := time.Now().UTC()
	l.ID = r.nextID
	l.CreatedAt, l.UpdatedAt = now, now
	r.items[l.ID] = l
	return l, nil
}

func (r *LinkRepository) UpdateLink(_ context.Context, l profile.SocialLink) (profile.SocialLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[l.ID]
	if !ok || cur.UserID != l.UserID {
		return profile.SocialLink{}, profile.ErrNotFound
	}
	l.CreatedAt = cur.CreatedAt
	l.UpdatedAt = time.Now().UTC()
	r.items[l.ID] = l
	return l, nil
}

func (r *LinkRepository) DeleteLink(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[id]
	if !ok || cur.UserID != userID {
		return profile.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
