package paging

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
)

// DefaultBlogPageSize matches the server side default.
const DefaultBlogPageSize = blog.DefaultPageSize

// BlogSource is the part of the API client the pager needs.
type BlogSource interface {
	Blogs(ctx context.Context, f client.Filters) (client.List[blog.Post], error)
	FeaturedBlog(ctx context.Context) (blog.Post, error)
}

// Page is one fetched listing page.
type Page struct {
	Items      []blog.Post
	TotalPages int
}

// FetchPage loads one page. TotalPages is always at least one.
func FetchPage(ctx context.Context, src BlogSource, f client.Filters) (Page, error) {
	list, err := src.Blogs(ctx, f)
	if err != nil {
		return Page{Items: []blog.Post{}, TotalPages: 1}, err
	}
	if list.TotalPages < 1 {
		list.TotalPages = 1
	}
	return Page{Items: list.Items, TotalPages: list.TotalPages}, nil
}

// BlogPager drives the blog index: an optional featured spotlight plus a
// searchable, non-cyclic page list.
type BlogPager struct {
	src      BlogSource
	pageSize int

	mu           sync.Mutex
	spotlight    *blog.Post
	spotlightSet bool
	search       string
	featuredOnly bool
	page         int
	totalPages   int
	items        []blog.Post
	err          error
}

func NewBlogPager(src BlogSource, pageSize int) *BlogPager {
	if pageSize <= 0 {
		pageSize = DefaultBlogPageSize
	}
	return &BlogPager{src: src, pageSize: pageSize, page: 1, totalPages: 1, items: []blog.Post{}}
}

// Load fetches the spotlight once and then the current page without it.
func (p *BlogPager) Load(ctx context.Context) error {
	p.mu.Lock()
	needSpotlight := !p.spotlightSet
	p.mu.Unlock()

	if needSpotlight {
		post, err := p.src.FeaturedBlog(ctx)
		var reqErr *client.RequestError
		switch {
		case err == nil:
			p.mu.Lock()
			p.spotlight, p.spotlightSet = &post, true
			p.mu.Unlock()
		case errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound:
			p.mu.Lock()
			p.spotlightSet = true
			p.mu.Unlock()
		}
		// other spotlight failures leave the index usable; the next Load retries
	}
	return p.fetch(ctx)
}

func (p *BlogPager) filters() client.Filters {
	f := client.Filters{
		Search:       p.search,
		FeaturedOnly: p.featuredOnly,
		Page:         p.page,
		PageSize:     p.pageSize,
	}
	if p.spotlight != nil {
		f.ExcludeID = p.spotlight.ID
	}
	return f
}

func (p *BlogPager) fetch(ctx context.Context) error {
	p.mu.Lock()
	f := p.filters()
	p.mu.Unlock()

	page, err := FetchPage(ctx, p.src, f)

	p.mu.Lock()
	defer p.mu.Unlock()
	if f != p.filters() {
		// a newer navigation superseded this answer
		return err
	}
	p.items, p.totalPages, p.err = page.Items, page.TotalPages, err
	return err
}

// Search sets the query and goes back to page 1.
func (p *BlogPager) Search(ctx context.Context, q string) error {
	p.mu.Lock()
	p.search, p.page = q, 1
	p.mu.Unlock()
	return p.fetch(ctx)
}

// ToggleFeatured flips the featured-only filter and goes back to page 1.
func (p *BlogPager) ToggleFeatured(ctx context.Context) error {
	p.mu.Lock()
	p.featuredOnly, p.page = !p.featuredOnly, 1
	p.mu.Unlock()
	return p.fetch(ctx)
}

func (p *BlogPager) ClearFilters(ctx context.Context) error {
	p.mu.Lock()
	p.search, p.featuredOnly, p.page = "", false, 1
	p.mu.Unlock()
	return p.fetch(ctx)
}

// Next moves forward unless on the last page; it reports whether it moved.
func (p *BlogPager) Next(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.page >= p.totalPages {
		p.mu.Unlock()
		return false, nil
	}
	p.page++
	p.mu.Unlock()
	return true, p.fetch(ctx)
}

func (p *BlogPager) Prev(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.page <= 1 {
		p.mu.Unlock()
		return false, nil
	}
	p.page--
	p.mu.Unlock()
	return true, p.fetch(ctx)
}

// GoTo jumps to page n clamped into [1, TotalPages].
func (p *BlogPager) GoTo(ctx context.Context, n int) error {
	p.mu.Lock()
	if n < 1 {
		n = 1
	}
	if n > p.totalPages {
		n = p.totalPages
	}
	p.page = n
	p.mu.Unlock()
	return p.fetch(ctx)
}

func (p *BlogPager) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page < p.totalPages
}

func (p *BlogPager) HasPrev() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page > 1
}

func (p *BlogPager) Items() []blog.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]blog.Post(nil), p.items...)
}

// Spotlight returns the featured post shown above the list, if any.
func (p *BlogPager) Spotlight() (blog.Post, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spotlight == nil {
		return blog.Post{}, false
	}
	return *p.spotlight, true
}

func (p *BlogPager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

func (p *BlogPager) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPages
}

// NoResults is true after a successful fetch that matched nothing.
func (p *BlogPager) NoResults() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err == nil && len(p.items) == 0
}

// Err is the failure of the last fetch.
func (p *BlogPager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
