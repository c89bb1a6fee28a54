package display

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/internal/apitest"
	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/skill"
)

type fakeSource struct {
	data     profile.Data
	dataErr  error
	posts    []blog.Post
	postsErr error
	filters  []client.Filters
}

func (f *fakeSource) Profile(context.Context, bool) (profile.Data, error) { return f.data, f.dataErr }

func (f *fakeSource) Blogs(_ context.Context, flt client.Filters) (client.List[blog.Post], error) {
	f.filters = append(f.filters, flt)
	return client.List[blog.Post]{Items: f.posts, TotalPages: 1}, f.postsErr
}

func (f *fakeSource) BlogBySlug(context.Context, string) (blog.Post, error) {
	return blog.Post{}, &client.TransportError{Err: errors.New("offline")}
}

func TestCompose(t *testing.T) {
	end := "2020-01-01"
	d := profile.Data{
		User: profile.Profile{Username: "ada", Bio: "bio", ProfilePhoto: "https://cdn.test/me.png"},
		Skills: []skill.Group{
			{Category: skill.Category{Name: "Backend"}, Skills: []string{"Go, SQL"}},
			{Category: skill.Category{Name: "Empty"}},
		},
		Projects: []project.Project{{ID: 1, IsActive: true}, {ID: 2}, {ID: 3, IsActive: true}},
		WorkExperience: []experience.Experience{
			{Company: "Now", StartDate: "2021-01-01", EndDate: &end, IsCurrent: true},
			{Company: "Then", StartDate: "2019-01-01", EndDate: &end},
			{Company: "Open", StartDate: "2022-01-01"},
		},
		SocialLinks: []profile.SocialLink{{ID: 1, IsActive: true}, {ID: 2}},
	}
	p := Compose(d)
	assert.Equal(t, "ada", p.Hero.Name)
	assert.Equal(t, profile.MediaPhoto, p.Hero.MediaKind)
	require.Len(t, p.Skills, 1)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills[0].Skills)
	require.Len(t, p.Projects, 2)
	assert.Equal(t, int64(3), p.Projects[0].ID)
	assert.Equal(t, "Present", p.Experience[0].End, "current job ignores the stored end date")
	assert.Equal(t, "2020-01-01", p.Experience[1].End)
	assert.Equal(t, "Present", p.Experience[2].End, "no end date reads as ongoing")
	assert.Equal(t, "2022-01-01 - Present", p.Experience[2].Period)
	assert.Len(t, p.Contact, 1)
	assert.Empty(t, p.Blog)
}

func TestLoadFailsOnProfileError(t *testing.T) {
	src := &fakeSource{dataErr: &client.RequestError{Status: 500, Message: "boom"}}
	c := NewComposer(src, 1024)
	assert.Equal(t, Loading, c.State())

	err := c.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Failed, c.State())
	assert.Contains(t, c.Err().Error(), "boom")
}

func TestBlogFailureKeepsPageReady(t *testing.T) {
	src := &fakeSource{postsErr: &client.TransportError{Err: errors.New("offline")}}
	c := NewComposer(src, 1024)
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, Ready, c.State())
	assert.Empty(t, c.Page().Blog)

	require.Len(t, src.filters, 1)
	assert.Equal(t, TopPostsLimit, src.filters[0].Limit)
	assert.Equal(t, TopPostsOrdering, src.filters[0].Ordering)
}

func TestBlogDetailTransportIsNotNotFound(t *testing.T) {
	c := NewComposer(&fakeSource{}, 1024)
	_, err := c.BlogDetail(context.Background(), "x")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestLoadAgainstAPI(t *testing.T) {
	api := apitest.Start(t)
	ctx := context.Background()
	admin := client.New(api.URL, client.WithSubject(api.OwnerID))
	sess, err := admin.Login(ctx, apitest.AdminUsername, apitest.AdminPassword)
	require.NoError(t, err)
	admin = client.New(api.URL, client.WithSubject(api.OwnerID), client.WithTokenSource(tokenString(sess.Token)))

	for i := 0; i < 4; i++ {
		_, err := admin.CreateProject(ctx, project.Project{Title: "p", Description: "d", Role: "r", IsActive: true})
		require.NoError(t, err)
	}
	for _, title := range []string{"One", "Two", "Three", "Four"} {
		_, err := admin.CreateBlog(ctx, blog.Post{Title: title, Content: "c", Tags: []string{"t"}, Status: blog.StatusPublished})
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := admin.BlogBySlug(ctx, "three")
		require.NoError(t, err)
	}

	visitor := client.New(api.URL, client.WithSubject(api.OwnerID))
	c := NewComposer(visitor, 1280)
	require.NoError(t, c.Load(ctx))
	assert.Equal(t, Ready, c.State())

	page := c.Page()
	require.Len(t, page.Blog, 3)
	assert.Equal(t, "Three", page.Blog[0].Title, "most viewed first")
	assert.Len(t, page.Projects, 4)
	assert.Len(t, c.VisibleProjects(), 3)
	c.Carousel().Next()
	assert.Len(t, c.VisibleProjects(), 1)

	c.Carousel().Resize(400)
	assert.Equal(t, 4, c.Carousel().TotalPages())

	post, err := c.BlogDetail(ctx, "one")
	require.NoError(t, err)
	assert.Equal(t, "One", post.Title)
	_, err = c.BlogDetail(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

type tokenString string

func (s tokenString) Token() string { return string(s) }
