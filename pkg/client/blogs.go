package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/artem13815/portfolio/pkg/blog"
)

// Filters are the query options of blog listings. Zero values are omitted.
type Filters struct {
	Search       string
	FeaturedOnly bool
	Page         int
	PageSize     int
	Limit        int
	ExcludeID    int64
	Ordering     string
}

func (f Filters) values() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.FeaturedOnly {
		q.Set("featured", "true")
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(f.PageSize))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.ExcludeID > 0 {
		q.Set("exclude_id", strconv.FormatInt(f.ExcludeID, 10))
	}
	if f.Ordering != "" {
		q.Set("ordering", f.Ordering)
	}
	return q
}

// Blogs lists published posts.
func (c *Client) Blogs(ctx context.Context, f Filters) (List[blog.Post], error) {
	return getList[blog.Post](ctx, c, call{method: http.MethodGet, path: "/blogs/", query: f.values()})
}

// FeaturedBlog returns the spotlight post; a 404 means there is none.
func (c *Client) FeaturedBlog(ctx context.Context) (blog.Post, error) {
	var out blog.Post
	err := c.do(ctx, call{method: http.MethodGet, path: "/blogs/featured/"}, &out)
	return out, err
}

func (c *Client) BlogBySlug(ctx context.Context, slug string) (blog.Post, error) {
	var out blog.Post
	err := c.do(ctx, call{method: http.MethodGet, path: "/blogs/" + url.PathEscape(slug) + "/"}, &out)
	return out, err
}

// MyBlogs lists every post of the logged in author, drafts included.
func (c *Client) MyBlogs(ctx context.Context, f Filters) (List[blog.Post], error) {
	return getList[blog.Post](ctx, c, call{method: http.MethodGet, path: "/user/blogs/", query: f.values(), auth: true})
}

func (c *Client) CreateBlog(ctx context.Context, p blog.Post) (blog.Post, error) {
	var out blog.Post
	err := c.do(ctx, call{method: http.MethodPost, path: "/blogs/create/", body: p, auth: true}, &out)
	return out, err
}

func (c *Client) UpdateBlog(ctx context.Context, id int64, patch blog.Patch) (blog.Post, error) {
	var out blog.Post
	err := c.do(ctx, call{method: http.MethodPatch, path: "/blogs/" + strconv.FormatInt(id, 10) + "/update/", body: patch, auth: true}, &out)
	return out, err
}

func (c *Client) DeleteBlog(ctx context.Context, id int64) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "/blogs/" + strconv.FormatInt(id, 10) + "/delete/", auth: true}, nil)
}
