package memory

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/pkg/auth"
	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/skill"
)

func seedPost(t *testing.T, r *BlogRepository, slug string, mut func(*blog.Post)) blog.Post {
	t.Helper()
	p := blog.Post{
		AuthorID: 1,
		Title:    gofakeit.Sentence(4),
		Slug:     slug,
		Content:  "Some body text for the post.",
		Tags:     []string{"go"},
		Status:   blog.StatusPublished,
	}
	if mut != nil {
		mut(&p)
	}
	out, err := r.Create(context.Background(), p)
	require.NoError(t, err)
	return out
}

func TestBlogListFilters(t *testing.T) {
	r := NewBlogRepository()
	ctx := context.Background()
	a := seedPost(t, r, "alpha", func(p *blog.Post) { p.Title = "Kafka in practice"; p.Views = 10 })
	b := seedPost(t, r, "beta", func(p *blog.Post) { p.IsFeatured = true; p.Views = 30 })
	seedPost(t, r, "gamma", func(p *blog.Post) { p.Status = blog.StatusDraft })

	items, total, err := r.List(ctx, blog.ListFilter{Status: blog.StatusPublished, Ordering: blog.ParseOrdering("-views")})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []int64{b.ID, a.ID}, ids(items))

	items, total, err = r.List(ctx, blog.ListFilter{Search: "KAFKA"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, a.ID, items[0].ID)

	items, _, err = r.List(ctx, blog.ListFilter{Status: blog.StatusPublished, ExcludeID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID}, ids(items))

	items, total, err = r.List(ctx, blog.ListFilter{FeaturedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, b.ID, items[0].ID)

	items, total, err = r.List(ctx, blog.ListFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, items, 1)
}

func TestBlogSlugUniqueAndViews(t *testing.T) {
	r := NewBlogRepository()
	p := seedPost(t, r, "hello", nil)
	_, err := r.Create(context.Background(), blog.Post{Slug: "hello"})
	assert.ErrorIs(t, err, blog.ErrSlugTaken)

	require.NoError(t, r.IncrementViews(context.Background(), p.ID))
	got, err := r.GetBySlug(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)
}

func TestProjectsNewestFirstAndOwned(t *testing.T) {
	r := NewProjectRepository()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := r.Create(ctx, project.Project{UserID: 1, Title: gofakeit.AppName()})
		require.NoError(t, err)
	}
	items, err := r.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ID)

	_, err = r.Get(ctx, 2, 1)
	assert.ErrorIs(t, err, project.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, 2, 1), project.ErrNotFound)
}

func TestSkillsCarryCategory(t *testing.T) {
	r := NewSkillRepository()
	ctx := context.Background()
	cat, err := r.CreateCategory(ctx, skill.Category{Name: "Backend"})
	require.NoError(t, err)
	_, err = r.CreateCategory(ctx, skill.Category{Name: "backend"})
	assert.ErrorIs(t, err, skill.ErrCategoryExists)

	_, err = r.Create(ctx, skill.Group{UserID: 1, CategoryID: cat.ID, Skills: []string{"Go"}})
	require.NoError(t, err)
	groups, err := r.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Backend", groups[0].Category.Name)
}

func TestUsersAndProfile(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()
	u, err := r.Create(ctx, auth.User{Username: "admin", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = r.Create(ctx, auth.User{Username: "ADMIN"})
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)

	p, err := r.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Username)

	p.FirstName = "Ada"
	p.Username = "changed"
	p, err = r.Update(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "admin", p.Username)
}

func TestRevoker(t *testing.T) {
	r := NewRevoker()
	ctx := context.Background()
	require.NoError(t, r.Revoke(ctx, "a", time.Now().Add(time.Hour)))
	require.NoError(t, r.Revoke(ctx, "old", time.Now().Add(-time.Minute)))

	ok, err := r.Revoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = r.Revoked(ctx, "old")
	assert.False(t, ok)
}

func ids(items []blog.Post) []int64 {
	out := make([]int64, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}
