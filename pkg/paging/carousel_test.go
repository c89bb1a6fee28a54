package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/portfolio/pkg/project"
)

func TestPageSizeFor(t *testing.T) {
	assert.Equal(t, 1, PageSizeFor(320))
	assert.Equal(t, 1, PageSizeFor(767))
	assert.Equal(t, 3, PageSizeFor(768))
	assert.Equal(t, 3, PageSizeFor(1440))
}

func TestCarouselWrapsBothWays(t *testing.T) {
	c := NewCarousel(1024, 7)
	assert.Equal(t, 3, c.TotalPages())

	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Page())
	c.Next()
	assert.Equal(t, 0, c.Page())
	c.Prev()
	assert.Equal(t, 2, c.Page())

	items := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, []int{7}, Window(c, items))
}

func TestCarouselResize(t *testing.T) {
	c := NewCarousel(1024, 7)
	c.Next()
	c.Resize(1280)
	assert.Equal(t, 1, c.Page(), "same page size keeps the page")

	c.Resize(500)
	assert.Equal(t, 0, c.Page())
	assert.Equal(t, 7, c.TotalPages())
	assert.Equal(t, 1, c.PageSize())
}

func TestCarouselClampOnShrink(t *testing.T) {
	c := NewCarousel(1024, 9)
	c.GoTo(2)
	assert.Equal(t, 2, c.Page())

	c.SetTotal(4)
	assert.Equal(t, 0, c.Page())

	c.GoTo(5)
	assert.Equal(t, 0, c.Page())
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(1024, 0)
	assert.Equal(t, 1, c.TotalPages())
	c.Next()
	c.Prev()
	assert.Equal(t, 0, c.Page())
	assert.Empty(t, Window(c, []string{}))
}

func TestProjectsPolicy(t *testing.T) {
	got := Projects([]project.Project{{ID: 1, IsActive: true}, {ID: 2}, {ID: 3, IsActive: true}})
	if assert.Len(t, got, 2) {
		assert.Equal(t, int64(3), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
	}
}
