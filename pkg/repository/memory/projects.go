package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/artem13815/portfolio/pkg/project"
)

type ProjectRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]project.Project
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{items: map[int64]project.Project{}}
}

func (r *ProjectRepository) List(_ context.Context, userID int64) ([]project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []project.Project{}
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *ProjectRepository) Get(_ context.Context, userID, id int64) (project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok || p.UserID != userID {
		return project.Project{}, project.ErrNotFound
	}
	return p, nil
}

func (r *ProjectRepository) Create(_ context.Context, p project.Project) (project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := time.Now().UTC()
	p.ID = r.nextID
	p.CreatedAt, p.UpdatedAt = now, now
	r.items[p.ID] = p
	return p, nil
}

func (r *ProjectRepository) Update(_ context.Context, p project.Project) (project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[p.ID]
	if !ok || cur.UserID != p.UserID {
		return project.Project{}, project.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.items[p.ID] = p
	return p, nil
}

func (r *ProjectRepository) Delete(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[id]
	if !ok || cur.UserID != userID {
		return project.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
