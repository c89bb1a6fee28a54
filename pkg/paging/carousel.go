// Package paging holds the list controllers of the public page: the
// responsive carousel and the blog pager.
package paging

import (
	"sync"

	"github.com/artem13815/portfolio/pkg/project"
)

const (
	// NarrowWidth is the viewport width below which one item is shown.
	NarrowWidth = 768
	narrowSize  = 1
	wideSize    = 3
)

// PageSizeFor maps a viewport width to items per carousel page.
func PageSizeFor(width int) int {
	if width < NarrowWidth {
		return narrowSize
	}
	return wideSize
}

// Carousel pages a client side list with cyclic navigation.
type Carousel struct {
	mu       sync.Mutex
	page     int
	pageSize int
	total    int
}

func NewCarousel(width, total int) *Carousel {
	c := &Carousel{pageSize: PageSizeFor(width)}
	c.SetTotal(total)
	return c
}

// Resize adapts the page size to width. The page resets only when the
// size actually changes.
func (c *Carousel) Resize(width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size := PageSizeFor(width); size != c.pageSize {
		c.pageSize = size
		c.page = 0
	}
}

// SetTotal updates the item count and clamps the current page.
func (c *Carousel) SetTotal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 {
		n = 0
	}
	c.total = n
	if c.page >= c.totalPages() {
		c.page = 0
	}
}

func (c *Carousel) totalPages() int {
	if c.total == 0 {
		return 1
	}
	return (c.total + c.pageSize - 1) / c.pageSize
}

func (c *Carousel) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages()
}

func (c *Carousel) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Carousel) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageSize
}

func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = (c.page + 1) % c.totalPages()
}

func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.totalPages()
	c.page = (c.page - 1 + n) % n
}

// GoTo jumps to page i (zero based); out of range values are ignored.
func (c *Carousel) GoTo(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i >= 0 && i < c.totalPages() {
		c.page = i
	}
}

// Bounds returns the [start, end) range of the current page within n items.
func (c *Carousel) Bounds(n int) (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	start := c.page * c.pageSize
	if start > n {
		start = n
	}
	end := start + c.pageSize
	if end > n {
		end = n
	}
	return start, end
}

// Window returns the items visible on the current page.
func Window[T any](c *Carousel, items []T) []T {
	start, end := c.Bounds(len(items))
	return items[start:end]
}

// Projects applies the public display policy: active projects only,
// newest id first.
func Projects(items []project.Project) []project.Project {
	return project.Showcase(items)
}
