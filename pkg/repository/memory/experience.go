package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/artem13815/portfolio/pkg/experience"
)

type ExperienceRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]experience.Experience
}

func NewExperienceRepository() *ExperienceRepository {
	return &ExperienceRepository{items: map[int64]experience.Experience{}}
}

// List orders by start date descending, ties by id descending.
func (r *ExperienceRepository) List(_ context.Context, userID int64) ([]experience.Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []experience.Experience{}
	for _, e := range r.items {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate > out[j].StartDate
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ExperienceRepository) Get(_ context.Context, userID, id int64) (experience.Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok || e.UserID != userID {
		return experience.Experience{}, experience.ErrNotFound
	}
	return e, nil
}

func (r *ExperienceRepository) Create(_ context.Context, e experience.Experience) (experience.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := time.Now().UTC()
	e.ID = r.nextID
	e.CreatedAt, e.UpdatedAt = now, now
	r.items[e.ID] = e
	return e, nil
}

func (r *ExperienceRepository) Update(_ context.Context, e experience.Experience) (experience.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[e.ID]
	if !ok || cur.UserID != e.UserID {
		return experience.Experience{}, experience.ErrNotFound
	}
	e.CreatedAt = cur.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	r.items[e.ID] = e
	return e, nil
}

func (r *ExperienceRepository) Delete(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[id]
	if !ok || cur.UserID != userID {
		return experience.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
