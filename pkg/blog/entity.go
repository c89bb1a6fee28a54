package blog

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrSlugTaken = errors.New("slug already taken")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Post is a blog article. Slug is its public identity and never changes
// once the post exists.
type Post struct {
	ID            int64      `json:"id"`
	AuthorID      int64      `json:"author_id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	Tags          []string   `json:"tags"`
	ReadTime      int        `json:"read_time"`
	Views         int        `json:"views"`
	IsFeatured    bool       `json:"is_featured"`
	Status        Status     `json:"status"`
	FeaturedImage string     `json:"featured_image"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Post) Clone() Post {
	p.Tags = append([]string(nil), p.Tags...)
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		p.PublishedAt = &t
	}
	return p
}

// Patch is a partial update; nil fields stay unchanged.
type Patch struct {
	Title         *string   `json:"title,omitempty"`
	Slug          *string   `json:"slug,omitempty"`
	Content       *string   `json:"content,omitempty"`
	Excerpt       *string   `json:"excerpt,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	ReadTime      *int      `json:"read_time,omitempty"`
	IsFeatured    *bool     `json:"is_featured,omitempty"`
	Status        *Status   `json:"status,omitempty"`
	FeaturedImage *string   `json:"featured_image,omitempty"`
}

// Order is one sort key of a listing.
type Order struct {
	Field string
	Desc  bool
}

// sortable columns accepted in an ordering expression.
var sortable = map[string]bool{
	"id": true, "title": true, "views": true, "created_at": true, "published_at": true, "read_time": true,
}

// ParseOrdering reads "-views,-created_at" style expressions. Unknown
// fields are skipped.
func ParseOrdering(s string) []Order {
	var out []Order
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")
		if sortable[field] {
			out = append(out, Order{Field: field, Desc: desc})
		}
	}
	return out
}

// ListFilter отбирает статьи. Нулевое значение поля: без ограничения.
type ListFilter struct {
	AuthorID     int64
	Status       Status
	Search       string
	FeaturedOnly bool
	ExcludeID    int64
	Ordering     []Order
	Limit        int
	Offset       int
}

// Page is one slice of a listing.
type Page struct {
	Results    []Post `json:"results"`
	Count      int    `json:"count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}

// Repository: порт хранения статей блога.
type Repository interface {
	// List returns the matching page and the total number of matches.
	List(ctx context.Context, f ListFilter) ([]Post, int, error)
	Get(ctx context.Context, id int64) (Post, error)
	GetBySlug(ctx context.Context, slug string) (Post, error)
	Create(ctx context.Context, p Post) (Post, error)
	Update(ctx context.Context, p Post) (Post, error)
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
}
