package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/artem13815/portfolio/pkg/blog"
)

type BlogRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]blog.Post
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{items: map[int64]blog.Post{}}
}

func (r *BlogRepository) List(_ context.Context, f blog.ListFilter) ([]blog.Post, int, error) {
	r.mu.RLock()
	matched := []blog.Post{}
	for _, p := range r.items {
		if matches(p, f) {
			matched = append(matched, p.Clone())
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j], f.Ordering) })
	total := len(matched)
	if f.Offset < 0 || f.Offset >= total {
		return []blog.Post{}, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < end {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], total, nil
}

func matches(p blog.Post, f blog.ListFilter) bool {
	if f.AuthorID != 0 && p.AuthorID != f.AuthorID {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.FeaturedOnly && !p.IsFeatured {
		return false
	}
	if f.ExcludeID != 0 && p.ID == f.ExcludeID {
		return false
	}
	if q := strings.ToLower(f.Search); q != "" {
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Content), q) ||
			strings.Contains(strings.ToLower(p.Excerpt), q)
	}
	return true
}

// less compares by each order key in turn, falling back to id descending.
func less(a, b blog.Post, order []blog.Order) bool {
	for _, o := range order {
		c := compare(a, b, o.Field)
		if c == 0 {
			continue
		}
		if o.Desc {
			return c > 0
		}
		return c < 0
	}
	return a.ID > b.ID
}

func compare(a, b blog.Post, field string) int {
	switch field {
	case "id":
		return cmpInt(a.ID, b.ID)
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "views":
		return cmpInt(int64(a.Views), int64(b.Views))
	case "read_time":
		return cmpInt(int64(a.ReadTime), int64(b.ReadTime))
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "published_at":
		return publishedAt(a).Compare(publishedAt(b))
	}
	return 0
}

func publishedAt(p blog.Post) time.Time {
	if p.PublishedAt == nil {
		return time.Time{}
	}
	return *p.PublishedAt
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (r *BlogRepository) Get(_ context.Context, id int64) (blog.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return blog.Post{}, blog.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *BlogRepository) GetBySlug(_ context.Context, slug string) (blog.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.Slug == slug {
			return p.Clone(), nil
		}
	}
	return blog.Post{}, blog.ErrNotFound
}

func (r *BlogRepository) Create(_ context.Context, p blog.Post) (blog.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Slug == p.Slug {
			return blog.Post{}, blog.ErrSlugTaken
		}
	}
	r.nextID++
	p.ID = r.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	r.items[p.ID] = p.Clone()
	return p, nil
}

func (r *BlogRepository) Update(_ context.Context, p blog.Post) (blog.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[p.ID]
	if !ok {
		return blog.Post{}, blog.ErrNotFound
	}
	p.Slug = cur.Slug
	p.Views = cur.Views
	p.CreatedAt = cur.CreatedAt
	r.items[p.ID] = p.Clone()
	return p, nil
}

func (r *BlogRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return blog.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *BlogRepository) IncrementViews(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return blog.ErrNotFound
	}
	p.Views++
	r.items[id] = p
	return nil
}
