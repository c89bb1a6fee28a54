package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/artem13815/portfolio/pkg/skill"
)

// SkillRepository implements skill.Repository and skill.CategoryRepository.
type SkillRepository struct {
	mu        sync.RWMutex
	nextID    int64
	nextCatID int64
	groups    map[int64]skill.Group
	cats      map[int64]skill.Category
}

func NewSkillRepository() *SkillRepository {
	return &SkillRepository{groups: map[int64]skill.Group{}, cats: map[int64]skill.Category{}}
}

func (r *SkillRepository) List(_ context.Context, userID int64) ([]skill.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []skill.Group{}
	for _, g := range r.groups {
		if g.UserID == userID {
			g.Category = r.cats[g.CategoryID]
			out = append(out, g.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SkillRepository) Get(_ context.Context, userID, id int64) (skill.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.groups[id]
	if !ok || g.UserID != userID {
		return skill.Group{}, skill.ErrNotFound
	}
	g.Category = r.cats[g.CategoryID]
	return g, nil
}

func (r *SkillRepository) Create(_ context.Context, g skill.Group) (skill.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := time.Now().UTC()
	g.ID = r.nextID
	g.CreatedAt, g.UpdatedAt = now, now
	g.Category = r.cats[g.CategoryID]
	r.groups[g.ID] = g
	return g, nil
}

func (r *SkillRepository) Update(_ context.Context, g skill.Group) (skill.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.groups[g.ID]
	if !ok || cur.UserID != g.UserID {
		return skill.Group{}, skill.ErrNotFound
	}
	g.CreatedAt = cur.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	g.Category = r.cats[g.CategoryID]
	r.groups[g.ID] = g
	return g, nil
}

func (r *SkillRepository) Delete(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.groups[id]
	if !ok || cur.UserID != userID {
		return skill.ErrNotFound
	}
	delete(r.groups, id)
	return nil
}

func (r *SkillRepository) ListCategories(_ context.Context) ([]skill.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]skill.Category, 0, len(r.cats))
	for _, c := range r.cats {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *SkillRepository) GetCategory(_ context.Context, id int64) (skill.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cats[id]
	if !ok {
		return skill.Category{}, skill.ErrNotFound
	}
	return c, nil
}

func (r *SkillRepository) CreateCategory(_ context.Context, c skill.Category) (skill.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.cats {
		if strings.EqualFold(existing.Name, c.Name) {
			return skill.Category{}, skill.ErrCategoryExists
		}
	}
	r.nextCatID++
	c.ID = r.nextCatID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.cats[c.ID] = c
	return c, nil
}
