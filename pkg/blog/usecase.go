package blog

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/artem13815/portfolio/pkg/text"
	"github.com/artem13815/portfolio/pkg/validate"
)

const (
	DefaultPageSize = 9
	MaxPageSize     = 50
	ExcerptLength   = 160

	// MaxPage keeps (page-1)*size inside int32 for every allowed size.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// Query is a listing request as it arrives from the API.
type Query struct {
	Search       string
	FeaturedOnly bool
	ExcludeID    int64
	Ordering     string
	Page         int
	PageSize     int
	// Limit, when set, returns only the first Limit posts as a single page.
	Limit int
}

// UseCase инкапсулирует работу со статьями блога.
type UseCase interface {
	Published(ctx context.Context, q Query) (Page, error)
	// Featured returns the newest featured published post.
	Featured(ctx context.Context) (Post, error)
	// Read returns a published post by slug and counts the view.
	Read(ctx context.Context, slug string) (Post, error)
	Mine(ctx context.Context, authorID int64, q Query) (Page, error)
	Create(ctx context.Context, authorID int64, p Post) (Post, error)
	Update(ctx context.Context, authorID, id int64, patch Patch) (Post, error)
	Delete(ctx context.Context, authorID, id int64) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Published(ctx context.Context, q Query) (Page, error) {
	return s.list(ctx, ListFilter{Status: StatusPublished}, q, "-published_at,-created_at")
}

func (s *service) Mine(ctx context.Context, authorID int64, q Query) (Page, error) {
	return s.list(ctx, ListFilter{AuthorID: authorID}, q, "-created_at")
}

func (s *service) list(ctx context.Context, f ListFilter, q Query, defaultOrder string) (Page, error) {
	page, size := q.Page, q.PageSize
	if q.Limit > 0 {
		page, size = 1, q.Limit
	}
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	f.Search = strings.TrimSpace(q.Search)
	f.FeaturedOnly = q.FeaturedOnly
	f.ExcludeID = q.ExcludeID
	f.Ordering = ParseOrdering(q.Ordering)
	if len(f.Ordering) == 0 {
		f.Ordering = ParseOrdering(defaultOrder)
	}
	f.Limit = size
	f.Offset = (page - 1) * size

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return Page{}, err
	}
	if items == nil {
		items = []Post{}
	}
	pages := TotalPages(total, size)
	if q.Limit > 0 {
		pages = 1
	}
	return Page{Results: items, Count: total, Page: page, PageSize: size, TotalPages: pages}, nil
}

// TotalPages is ceil(total/size), never below one.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

func (s *service) Featured(ctx context.Context) (Post, error) {
	items, _, err := s.repo.List(ctx, ListFilter{
		Status:       StatusPublished,
		FeaturedOnly: true,
		Ordering:     ParseOrdering("-published_at,-created_at"),
		Limit:        1,
	})
	if err != nil {
		return Post{}, err
	}
	if len(items) == 0 {
		return Post{}, ErrNotFound
	}
	return items[0], nil
}

func (s *service) Read(ctx context.Context, slug string) (Post, error) {
	p, err := s.repo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return Post{}, err
	}
	if p.Status != StatusPublished {
		return Post{}, ErrNotFound
	}
	if err := s.repo.IncrementViews(ctx, p.ID); err != nil {
		return Post{}, err
	}
	p.Views++
	return p, nil
}

func (s *service) Create(ctx context.Context, authorID int64, p Post) (Post, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = strings.TrimSpace(p.Slug)
	if p.Slug == "" {
		p.Slug = text.Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	p.Tags = text.NormalizeList(p.Tags)
	if err := Validate(p).Err(); err != nil {
		return Post{}, err
	}
	if _, err := s.repo.GetBySlug(ctx, p.Slug); err == nil {
		return Post{}, validate.Errors{"slug": "A post with this slug already exists"}
	} else if !errors.Is(err, ErrNotFound) {
		return Post{}, err
	}

	now := s.now()
	p.ID = 0
	p.AuthorID = authorID
	p.Views = 0
	p.CreatedAt = now
	p.UpdatedAt = now
	p.PublishedAt = nil
	s.derive(&p)
	out, err := s.repo.Create(ctx, p)
	if errors.Is(err, ErrSlugTaken) {
		return Post{}, validate.Errors{"slug": "A post with this slug already exists"}
	}
	return out, err
}

func (s *service) Update(ctx context.Context, authorID, id int64, patch Patch) (Post, error) {
	current, err := s.owned(ctx, authorID, id)
	if err != nil {
		return Post{}, err
	}
	if patch.Slug != nil && strings.TrimSpace(*patch.Slug) != current.Slug {
		return Post{}, validate.Errors{"slug": "Slug cannot be changed"}
	}
	next := current
	if patch.Title != nil {
		next.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		next.Content = *patch.Content
		// derived values follow the new content unless given explicitly
		if patch.ReadTime == nil {
			next.ReadTime = 0
		}
		if patch.Excerpt == nil {
			next.Excerpt = ""
		}
	}
	if patch.Excerpt != nil {
		next.Excerpt = strings.TrimSpace(*patch.Excerpt)
	}
	if patch.Tags != nil {
		next.Tags = text.NormalizeList(*patch.Tags)
	}
	if patch.ReadTime != nil {
		next.ReadTime = *patch.ReadTime
	}
	if patch.IsFeatured != nil {
		next.IsFeatured = *patch.IsFeatured
	}
	if patch.Status != nil {
		next.Status = *patch.Status
	}
	if patch.FeaturedImage != nil {
		next.FeaturedImage = strings.TrimSpace(*patch.FeaturedImage)
	}
	if err := Validate(next).Err(); err != nil {
		return Post{}, err
	}
	next.UpdatedAt = s.now()
	s.derive(&next)
	return s.repo.Update(ctx, next)
}

func (s *service) Delete(ctx context.Context, authorID, id int64) error {
	if _, err := s.owned(ctx, authorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) owned(ctx context.Context, authorID, id int64) (Post, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return Post{}, err
	}
	if p.AuthorID != authorID {
		return Post{}, ErrNotFound
	}
	return p, nil
}

// derive fills read time and excerpt from content and stamps published_at
// the first time the post becomes published.
func (s *service) derive(p *Post) {
	if p.ReadTime <= 0 {
		p.ReadTime = text.ReadTime(p.Content)
	}
	if strings.TrimSpace(p.Excerpt) == "" {
		p.Excerpt = text.Excerpt(p.Content, ExcerptLength)
	}
	if p.Status == StatusPublished && p.PublishedAt == nil {
		t := s.now()
		p.PublishedAt = &t
	}
}

// Validate checks a post draft field by field.
func Validate(p Post) validate.Errors {
	errs := validate.Errors{}
	errs.Required("title", p.Title, "Title is required")
	slug := strings.TrimSpace(p.Slug)
	switch {
	case slug == "":
		errs.Add("slug", "Slug is required")
	case !validate.IsSlug(slug):
		errs.Add("slug", "Slug can only contain lowercase letters, numbers and hyphens")
	}
	errs.Required("content", p.Content, "Content is required")
	if len(text.NormalizeList(p.Tags)) == 0 {
		errs.Add("tags", "Add at least one tag")
	}
	if p.Status != "" && !p.Status.Valid() {
		errs.Add("status", "Status must be draft, published or archived")
	}
	if p.ReadTime < 0 {
		errs.Add("read_time", "Read time cannot be negative")
	}
	return errs
}
