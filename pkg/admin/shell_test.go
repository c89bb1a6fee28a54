package admin_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/internal/apitest"
	"github.com/artem13815/portfolio/pkg/admin"
	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/session"
	"github.com/artem13815/portfolio/pkg/skill"
)

var yes = admin.ConfirmFunc(func(string) bool { return true })

func newShell(t *testing.T) (*admin.Shell, *session.Session, *apitest.API) {
	t.Helper()
	api := apitest.Start(t)
	sess := session.New(session.NewMemoryStore())
	c := client.New(api.URL, client.WithTokenSource(sess), client.WithSubject(api.OwnerID))
	return admin.NewShell(c, sess), sess, api
}

func login(t *testing.T, sh *admin.Shell) *admin.Workspace {
	t.Helper()
	_, err := sh.Login(context.Background(), apitest.AdminUsername, apitest.AdminPassword)
	require.NoError(t, err)
	ws, err := sh.Workspace()
	require.NoError(t, err)
	return ws
}

func TestShellRequiresLogin(t *testing.T) {
	sh, sess, _ := newShell(t)
	assert.False(t, sh.Authenticated())
	assert.ErrorIs(t, sh.Select(admin.TabBlog), admin.ErrNotAuthenticated)
	_, err := sh.Workspace()
	assert.ErrorIs(t, err, admin.ErrNotAuthenticated)

	_, err = sh.Login(context.Background(), apitest.AdminUsername, "wrong")
	var reqErr *client.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)

	login(t, sh)
	assert.NotEmpty(t, sess.Token())
	require.NoError(t, sh.Select(admin.TabBlog))
	assert.Equal(t, admin.TabBlog, sh.Active())
	assert.ErrorIs(t, sh.Select("settings"), admin.ErrUnknownTab)

	require.NoError(t, sh.Logout(context.Background()))
	assert.False(t, sh.Authenticated())
}

func TestUnauthorizedLogsOut(t *testing.T) {
	sh, sess, _ := newShell(t)
	ws := login(t, sh)
	require.NoError(t, sess.Save("forged"))

	require.NoError(t, ws.Projects.BeginCreate(project.Project{Title: "t", Description: "d", Role: "r"}))
	err := ws.Projects.Submit(context.Background())
	assert.Error(t, err)

	assert.False(t, sh.Authenticated())
	assert.Equal(t, admin.Idle, ws.Projects.Mode(), "editors are closed on logout")
	assert.ErrorIs(t, ws.Projects.BeginCreate(project.Project{}), admin.ErrClosed)
}

func TestFailedLoginKeepsSession(t *testing.T) {
	sh, sess, _ := newShell(t)
	login(t, sh)
	tok := sess.Token()

	_, err := sh.Login(context.Background(), apitest.AdminUsername, "mistyped")
	require.Error(t, err)
	assert.True(t, sh.Authenticated())
	assert.Equal(t, tok, sess.Token())
	_, err = sh.Workspace()
	assert.NoError(t, err)
}

func TestProjectRoundTrip(t *testing.T) {
	sh, _, _ := newShell(t)
	ws := login(t, sh)
	ctx := context.Background()

	url := "https://example.com"
	require.NoError(t, ws.Projects.BeginCreate(project.Project{
		Title: "Folio", Description: "Site", Role: "Dev", ProjectURL: &url,
		Technologies: []string{"Go"}, IsActive: true,
	}))
	require.NoError(t, ws.Projects.Submit(ctx))
	items := ws.Projects.Items()
	require.Len(t, items, 1)
	before := items[0]

	require.NoError(t, ws.Projects.BeginEdit(before.ID))
	require.NoError(t, ws.Projects.Submit(ctx))
	after := ws.Projects.Items()[0]

	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.Role, after.Role)
	assert.Equal(t, before.Technologies, after.Technologies)
	assert.Equal(t, *before.ProjectURL, *after.ProjectURL)
	assert.Equal(t, before.IsActive, after.IsActive)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestBlogEditorAgainstAPI(t *testing.T) {
	sh, _, _ := newShell(t)
	ws := login(t, sh)
	ctx := context.Background()

	require.NoError(t, ws.Blogs.BeginCreate(blog.Post{
		Title: "Hello World", Slug: "hello-world", Content: "Body",
		Tags: []string{"intro"}, Status: blog.StatusDraft,
	}))
	require.NoError(t, ws.Blogs.Submit(ctx))
	items := ws.Blogs.Items()
	require.Len(t, items, 1)
	assert.Equal(t, blog.StatusDraft, items[0].Status)

	require.NoError(t, ws.Blogs.BeginCreate(blog.Post{
		Title: "Again", Slug: "hello-world", Content: "Body", Tags: []string{"intro"},
	}))
	assert.Error(t, ws.Blogs.Submit(ctx))
	assert.Contains(t, ws.Blogs.Errors(), "slug", "server field error reaches the form")
	ws.Blogs.Cancel()

	require.NoError(t, ws.Blogs.BeginEdit(items[0].ID))
	require.NoError(t, ws.Blogs.Edit(func(p *blog.Post) { p.Slug = "renamed" }))
	assert.Error(t, ws.Blogs.Submit(ctx))
	assert.Equal(t, "Slug cannot be changed", ws.Blogs.Errors()["slug"])
	ws.Blogs.Cancel()

	require.NoError(t, ws.Blogs.Delete(ctx, items[0].ID, yes))
	assert.Empty(t, ws.Blogs.Items())
}

func TestSkillRows(t *testing.T) {
	sh, _, api := newShell(t)
	ws := login(t, sh)
	ctx := context.Background()

	cat, err := api.Store.Skills.CreateCategory(ctx, skill.Category{Name: "Backend"})
	require.NoError(t, err)

	require.NoError(t, ws.Skills.AddSkill(ctx, cat.ID, "Go"))
	require.NoError(t, ws.Skills.AddSkill(ctx, cat.ID, "SQL"))
	assert.Error(t, ws.Skills.AddSkill(ctx, cat.ID, "go"), "names are unique within a group")

	rows := ws.Skills.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0].GroupID, rows[1].GroupID)
	assert.Equal(t, skill.RowKey(rows[0].GroupID, "Go"), rows[0].Key)

	require.NoError(t, ws.Skills.RemoveRow(ctx, rows[0], yes))
	rows = ws.Skills.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "SQL", rows[0].Name)
	assert.Len(t, ws.Skills.Items(), 1)

	require.NoError(t, ws.Skills.RemoveRow(ctx, rows[0], yes))
	assert.Empty(t, ws.Skills.Rows())
	assert.Empty(t, ws.Skills.Items(), "last skill removes the group")
}

func TestProfileForm(t *testing.T) {
	sh, _, _ := newShell(t)
	ws := login(t, sh)
	ctx := context.Background()
	require.NoError(t, ws.Profile.Load(ctx))
	assert.Equal(t, profile.MediaNone, ws.Profile.MediaKind())

	require.NoError(t, ws.Profile.BeginEdit())
	require.NoError(t, ws.Profile.Edit(func(p *profile.Profile) { p.FirstName = "Ada" }))
	assert.ErrorIs(t, ws.Profile.Submit(ctx), admin.ErrInvalidDraft)
	assert.Contains(t, ws.Profile.Errors(), "last_name")

	require.NoError(t, ws.Profile.Edit(func(p *profile.Profile) {
		p.LastName = "Lovelace"
		p.Email = "ada@example.com"
	}))
	require.NoError(t, ws.Profile.SetMedia("https://lottie.host/x/hero.lottie"))
	require.NoError(t, ws.Profile.Submit(ctx))
	assert.Equal(t, "Profile updated successfully!", ws.Profile.Notice())
	assert.Equal(t, "Ada Lovelace", ws.Profile.Current().FullName())
	assert.Equal(t, profile.MediaAnimation, ws.Profile.MediaKind())
}
