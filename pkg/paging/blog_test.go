package paging

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/internal/apitest"
	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
)

type fakeSource struct {
	posts     []blog.Post
	featured  *blog.Post
	failList  error
	calls     []client.Filters
	featCalls int
}

func (f *fakeSource) Blogs(_ context.Context, flt client.Filters) (client.List[blog.Post], error) {
	f.calls = append(f.calls, flt)
	if f.failList != nil {
		return client.List[blog.Post]{}, f.failList
	}
	var matched []blog.Post
	for _, p := range f.posts {
		if flt.ExcludeID != 0 && p.ID == flt.ExcludeID {
			continue
		}
		if flt.FeaturedOnly && !p.IsFeatured {
			continue
		}
		if flt.Search != "" && p.Title != flt.Search {
			continue
		}
		matched = append(matched, p)
	}
	size := flt.PageSize
	start := (flt.Page - 1) * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return client.List[blog.Post]{Items: matched[start:end], TotalPages: blog.TotalPages(len(matched), size)}, nil
}

func (f *fakeSource) FeaturedBlog(context.Context) (blog.Post, error) {
	f.featCalls++
	if f.featured == nil {
		return blog.Post{}, &client.RequestError{Status: http.StatusNotFound, Message: "not found"}
	}
	return *f.featured, nil
}

func posts(n int) []blog.Post {
	out := make([]blog.Post, n)
	for i := range out {
		out[i] = blog.Post{ID: int64(i + 1), Title: "post"}
	}
	return out
}

func TestBlogPagerNavigation(t *testing.T) {
	src := &fakeSource{posts: posts(20)}
	p := NewBlogPager(src, 0)
	ctx := context.Background()

	require.NoError(t, p.Load(ctx))
	assert.Equal(t, 3, p.TotalPages())
	assert.Len(t, p.Items(), 9)
	assert.False(t, p.HasPrev())

	moved, err := p.Prev(ctx)
	require.NoError(t, err)
	assert.False(t, moved, "first page has no previous")

	require.NoError(t, p.GoTo(ctx, 99))
	assert.Equal(t, 3, p.Page())
	assert.Len(t, p.Items(), 2)
	assert.False(t, p.HasNext())

	moved, _ = p.Next(ctx)
	assert.False(t, moved)
	assert.Equal(t, 3, p.Page())

	require.NoError(t, p.GoTo(ctx, -3))
	assert.Equal(t, 1, p.Page())
}

func TestBlogPagerSpotlightExcluded(t *testing.T) {
	items := posts(4)
	items[1].IsFeatured = true
	src := &fakeSource{posts: items, featured: &items[1]}
	p := NewBlogPager(src, 9)
	ctx := context.Background()

	require.NoError(t, p.Load(ctx))
	spot, ok := p.Spotlight()
	require.True(t, ok)
	assert.Equal(t, int64(2), spot.ID)
	assert.Len(t, p.Items(), 3)
	assert.Equal(t, int64(2), src.calls[0].ExcludeID)

	require.NoError(t, p.Load(ctx))
	assert.Equal(t, 1, src.featCalls, "spotlight is fetched once")
}

func TestBlogPagerFiltersResetPage(t *testing.T) {
	src := &fakeSource{posts: posts(20)}
	p := NewBlogPager(src, 5)
	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.GoTo(ctx, 3))

	require.NoError(t, p.ToggleFeatured(ctx))
	assert.Equal(t, 1, p.Page())
	assert.True(t, p.NoResults())
	assert.Equal(t, 1, p.TotalPages())
	assert.True(t, src.calls[len(src.calls)-1].FeaturedOnly)

	require.NoError(t, p.GoTo(ctx, 1))
	require.NoError(t, p.ClearFilters(ctx))
	require.NoError(t, p.GoTo(ctx, 2))
	require.NoError(t, p.Search(ctx, "post"))
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, "post", src.calls[len(src.calls)-1].Search)
	assert.False(t, p.NoResults())
}

func TestBlogPagerFailure(t *testing.T) {
	boom := &client.TransportError{Err: errors.New("connection refused")}
	src := &fakeSource{failList: boom}
	p := NewBlogPager(src, 9)

	err := p.Load(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, p.Items())
	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, boom, p.Err())
	assert.False(t, p.NoResults())
}

func TestBlogPagerAgainstAPI(t *testing.T) {
	api := apitest.Start(t)
	c := client.New(api.URL, client.WithSubject(api.OwnerID))
	ctx := context.Background()
	sess, err := c.Login(ctx, apitest.AdminUsername, apitest.AdminPassword)
	require.NoError(t, err)
	admin := client.New(api.URL, client.WithTokenSource(staticToken(sess.Token)))

	for i, title := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		_, err := admin.CreateBlog(ctx, blog.Post{
			Title:      title,
			Content:    "text",
			Tags:       []string{"t"},
			Status:     blog.StatusPublished,
			IsFeatured: i == 0,
		})
		require.NoError(t, err)
	}

	p := NewBlogPager(c, 2)
	require.NoError(t, p.Load(ctx))
	spot, ok := p.Spotlight()
	require.True(t, ok)
	assert.Equal(t, "Alpha", spot.Title)
	assert.Equal(t, 2, p.TotalPages())

	require.NoError(t, p.Search(ctx, "gam"))
	require.Len(t, p.Items(), 1)
	assert.Equal(t, "Gamma", p.Items()[0].Title)
}

type staticToken string

func (s staticToken) Token() string { return string(s) }
