package client_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/internal/apitest"
	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/contact"
	"github.com/artem13815/portfolio/pkg/mail"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/skill"
)

type staticToken struct {
	mu  sync.Mutex
	tok string
}

func (s *staticToken) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tok
}

func (s *staticToken) Set(tok string) {
	s.mu.Lock()
	s.tok = tok
	s.mu.Unlock()
}

func loggedIn(t *testing.T, opts ...apitest.Option) (*client.Client, *staticToken, *apitest.API) {
	t.Helper()
	api := apitest.Start(t, opts...)
	tokens := &staticToken{}
	c := client.New(api.URL, client.WithTokenSource(tokens), client.WithSubject(api.OwnerID))
	sess, err := c.Login(context.Background(), apitest.AdminUsername, apitest.AdminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	tokens.Set(sess.Token)
	return c, tokens, api
}

func TestDecodeListShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/skill-categories/":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Backend"}]`))
		case "/api/users/1/skills/":
			_, _ = w.Write([]byte(`{"results":[{"id":2},{"id":3}],"total_pages":0}`))
		default:
			_, _ = w.Write([]byte(`{"results":[{"id":4}],"total_pages":4}`))
		}
	}))
	defer srv.Close()
	c := client.New(srv.URL + "/api")
	ctx := context.Background()

	cats, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats.Items, 1)
	assert.Equal(t, 1, cats.TotalPages)

	groups, err := c.Skills(ctx)
	require.NoError(t, err)
	assert.Len(t, groups.Items, 2)
	assert.Equal(t, 1, groups.TotalPages, "total pages is never below one")

	posts, err := c.Blogs(ctx, client.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 4, posts.TotalPages)
}

func TestErrorMessageSources(t *testing.T) {
	bodies := map[string]string{
		"/api/blogs/a/": `{"message":"from message"}`,
		"/api/blogs/b/": `{"error":"from error"}`,
		"/api/blogs/c/": `{"detail":"from detail"}`,
		"/api/blogs/d/": `not json`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(bodies[r.URL.Path]))
	}))
	defer srv.Close()
	c := client.New(srv.URL + "/api")

	want := map[string]string{"a": "from message", "b": "from error", "c": "from detail", "d": http.StatusText(http.StatusTeapot)}
	for slug, msg := range want {
		_, err := c.BlogBySlug(context.Background(), slug)
		var reqErr *client.RequestError
		require.True(t, errors.As(err, &reqErr), slug)
		assert.Equal(t, http.StatusTeapot, reqErr.Status)
		assert.Equal(t, msg, reqErr.Message)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := client.New(url).Profile(context.Background(), false)
	var te *client.TransportError
	assert.True(t, errors.As(err, &te))
}

func TestTokenIsReadPerRequest(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	tokens := &staticToken{}
	c := client.New(srv.URL, client.WithTokenSource(tokens))
	ctx := context.Background()

	_, _ = c.MyBlogs(ctx, client.Filters{})
	tokens.Set("abc")
	_, _ = c.MyBlogs(ctx, client.Filters{})
	_, _ = c.Blogs(ctx, client.Filters{})

	assert.Equal(t, []string{"", "Token abc", ""}, seen, "public calls never carry the token")
}

func TestUnauthorizedHandlerRunsOncePerResponse(t *testing.T) {
	api := apitest.Start(t)
	var calls int32
	c := client.New(api.URL,
		client.WithSubject(api.OwnerID),
		client.WithTokenSource(&staticToken{tok: "expired"}),
		client.WithUnauthorizedHandler(func() { atomic.AddInt32(&calls, 1) }),
	)

	_, err := c.CreateProject(context.Background(), project.Project{Title: "x"})
	var reqErr *client.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, err = c.Projects(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, err = c.Login(context.Background(), apitest.AdminUsername, "wrong")
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "failed login is not a session expiry")
}

func TestProjectLifecycle(t *testing.T) {
	c, _, _ := loggedIn(t)
	ctx := context.Background()

	_, err := c.CreateProject(ctx, project.Project{})
	var reqErr *client.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Contains(t, reqErr.Fields, "title")

	created, err := c.CreateProject(ctx, project.Project{
		Title:        gofakeit.AppName(),
		Description:  gofakeit.Sentence(8),
		Role:         "Backend",
		Technologies: []string{"Go, PostgreSQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, created.Technologies)

	public, err := c.Projects(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, public.Items, "inactive project is hidden from visitors")

	created.IsActive = true
	_, err = c.UpdateProject(ctx, created.ID, created)
	require.NoError(t, err)
	public, err = c.Projects(ctx, false)
	require.NoError(t, err)
	assert.Len(t, public.Items, 1)

	require.NoError(t, c.DeleteProject(ctx, created.ID))
	err = c.DeleteProject(ctx, created.ID)
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusNotFound, reqErr.Status)
}

func TestSkillsAndCategories(t *testing.T) {
	c, _, _ := loggedIn(t)
	ctx := context.Background()

	cat, err := c.CreateCategory(ctx, skill.Category{Name: "Backend"})
	require.NoError(t, err)
	cats, err := c.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats.Items, 1)

	g, err := c.CreateSkill(ctx, skill.Group{CategoryID: cat.ID, Skills: []string{"Go", "SQL"}})
	require.NoError(t, err)
	assert.Equal(t, "Backend", g.Category.Name)

	groups, err := c.Skills(ctx)
	require.NoError(t, err)
	require.Len(t, groups.Items, 1)
	assert.Equal(t, []string{"Go", "SQL"}, groups.Items[0].Skills)
}

func TestLinksAndProfile(t *testing.T) {
	c, _, _ := loggedIn(t)
	ctx := context.Background()

	first, last, email := "Ada", "Lovelace", "ada@example.com"
	p, err := c.UpdateProfile(ctx, profile.Patch{FirstName: &first, LastName: &last, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.FullName())

	_, err = c.CreateLink(ctx, profile.SocialLink{Platform: "telegram", URL: "https://example.com"})
	var reqErr *client.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Contains(t, reqErr.Fields, "url")

	l, err := c.CreateLink(ctx, profile.SocialLink{Platform: "github", URL: "https://github.com/ada", IsActive: true})
	require.NoError(t, err)
	links, err := c.Links(ctx, false)
	require.NoError(t, err)
	require.Len(t, links.Items, 1)
	assert.Equal(t, l.ID, links.Items[0].ID)

	data, err := c.Profile(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Ada", data.User.FirstName)
	assert.Len(t, data.SocialLinks, 1)
}

func TestBlogFlow(t *testing.T) {
	c, _, _ := loggedIn(t)
	ctx := context.Background()

	post, err := c.CreateBlog(ctx, blog.Post{Title: "Hello Go", Content: "Some words here", Tags: []string{"go"}, Status: blog.StatusPublished})
	require.NoError(t, err)
	assert.Equal(t, "hello-go", post.Slug)

	got, err := c.BlogBySlug(ctx, "hello-go")
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	_, err = c.BlogBySlug(ctx, "nope")
	var reqErr *client.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusNotFound, reqErr.Status)

	slug := "renamed"
	_, err = c.UpdateBlog(ctx, post.ID, blog.Patch{Slug: &slug})
	require.True(t, errors.As(err, &reqErr))
	assert.Contains(t, reqErr.Fields, "slug")

	list, err := c.Blogs(ctx, client.Filters{Search: "HELLO", PageSize: 9})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	mine, err := c.MyBlogs(ctx, client.Filters{})
	require.NoError(t, err)
	assert.Len(t, mine.Items, 1)

	require.NoError(t, c.DeleteBlog(ctx, post.ID))
}

func TestUploadImage(t *testing.T) {
	c, _, _ := loggedIn(t)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	url, err := c.UploadImage(context.Background(), "cover.png", bytes.NewReader(png))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://media.test/uploads/blog/"), url)

	url, err = c.UploadProfilePhoto(context.Background(), "me.png", bytes.NewReader(png))
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/profile/")
}

type captureSender struct {
	sent []mail.Message
}

func (s *captureSender) Send(_ context.Context, m mail.Message) error {
	s.sent = append(s.sent, m)
	return nil
}

func TestContact(t *testing.T) {
	sender := &captureSender{}
	api := apitest.Start(t, apitest.WithMail(sender))
	c := client.New(api.URL)

	err := c.SendContact(context.Background(), contact.Message{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Subject: "Hi", Message: "Hello",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Grace Hopper", sender.sent[0].Params["from_name"])

	err = c.SendContact(context.Background(), contact.Message{Email: "bad"})
	var reqErr *client.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
}

func TestLogoutRevokesToken(t *testing.T) {
	c, _, _ := loggedIn(t)
	ctx := context.Background()
	require.NoError(t, c.Logout(ctx))

	_, err := c.MyBlogs(ctx, client.Filters{})
	var reqErr *client.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
}
