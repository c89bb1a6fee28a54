package admin

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/project"
)

// fakeResource records calls and keeps items in memory.
type fakeResource[T any] struct {
	mu      sync.Mutex
	items   []T
	setID   func(*T, int64)
	getID   func(T) int64
	nextID  int64
	calls   []string
	failErr error
	block   chan struct{}
}

func (f *fakeResource[T]) record(c string) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
}

func (f *fakeResource[T]) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}

func (f *fakeResource[T]) List(context.Context) ([]T, error) {
	f.record("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]T{}, f.items...), nil
}

func (f *fakeResource[T]) Create(_ context.Context, v T) (T, error) {
	f.record("create")
	if f.block != nil {
		<-f.block
	}
	if f.failErr != nil {
		var zero T
		return zero, f.failErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.setID(&v, f.nextID)
	f.items = append(f.items, v)
	return v, nil
}

func (f *fakeResource[T]) Update(_ context.Context, id int64, v T) (T, error) {
	f.record("update")
	if f.failErr != nil {
		var zero T
		return zero, f.failErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.getID(f.items[i]) == id {
			f.items[i] = v
		}
	}
	return v, nil
}

func (f *fakeResource[T]) Delete(_ context.Context, id int64) error {
	f.record("delete")
	if f.failErr != nil {
		return f.failErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.items[:0]
	for _, it := range f.items {
		if f.getID(it) != id {
			out = append(out, it)
		}
	}
	f.items = out
	return nil
}

func newProjects(items ...project.Project) (*Editor[project.Project], *fakeResource[project.Project]) {
	res := &fakeResource[project.Project]{
		items:  items,
		nextID: int64(len(items)),
		setID:  func(p *project.Project, id int64) { p.ID = id },
		getID:  func(p project.Project) int64 { return p.ID },
	}
	return NewEditor(ProjectKind, Resource[project.Project](res)), res
}

func newBlogs() (*Editor[blog.Post], *fakeResource[blog.Post]) {
	res := &fakeResource[blog.Post]{
		setID: func(p *blog.Post, id int64) { p.ID = id },
		getID: func(p blog.Post) int64 { return p.ID },
	}
	return NewEditor(BlogKind, Resource[blog.Post](res)), res
}

func validProject() project.Project {
	return project.Project{Title: "Folio", Description: "Portfolio site", Role: "Author"}
}

func TestSubmitValidDraftCreatesThenRefetches(t *testing.T) {
	ed, res := newProjects()
	ctx := context.Background()

	require.NoError(t, ed.BeginCreate(validProject()))
	assert.Empty(t, ed.Validate())
	require.NoError(t, ed.Submit(ctx))

	assert.Equal(t, []string{"create", "list"}, res.Calls())
	assert.Equal(t, Idle, ed.Mode())
	assert.Equal(t, "Project created successfully!", ed.Notice())
	assert.Len(t, ed.Items(), 1)
}

func TestSubmitInvalidDraftSendsNothing(t *testing.T) {
	ed, res := newBlogs()
	cases := map[string]blog.Post{
		"title":   {Slug: "a", Content: "c", Tags: []string{"t"}},
		"slug":    {Title: "t", Slug: "Has Space", Content: "c", Tags: []string{"t"}},
		"content": {Title: "t", Slug: "a", Tags: []string{"t"}},
		"tags":    {Title: "t", Slug: "a", Content: "c"},
	}
	for field, draft := range cases {
		ed.Cancel()
		require.NoError(t, ed.BeginCreate(draft))
		err := ed.Submit(context.Background())
		assert.ErrorIs(t, err, ErrInvalidDraft)
		errs := ed.Errors()
		assert.Len(t, errs, 1, field)
		assert.Contains(t, errs, field)
		assert.Equal(t, Creating, ed.Mode())
	}
	assert.Empty(t, res.Calls())
}

func TestBlogDraftScenario(t *testing.T) {
	ed, res := newBlogs()
	require.NoError(t, ed.BeginCreate(blog.Post{
		Title: "Hello World", Slug: "hello-world", Content: "Body",
		Tags: []string{"intro"}, Status: blog.StatusDraft,
	}))
	require.NoError(t, ed.Submit(context.Background()))
	items := ed.Items()
	require.Len(t, items, 1)
	assert.Equal(t, blog.StatusDraft, items[0].Status)
	assert.Equal(t, []string{"create", "list"}, res.Calls())
}

func TestOneEditorPerTab(t *testing.T) {
	ed, _ := newProjects(project.Project{ID: 1, Title: "a"})
	require.NoError(t, ed.Refresh(context.Background()))
	require.NoError(t, ed.BeginCreate(project.Project{}))
	assert.ErrorIs(t, ed.BeginEdit(1), ErrEditorBusy)
	assert.ErrorIs(t, ed.BeginCreate(project.Project{}), ErrEditorBusy)

	ed.Cancel()
	require.NoError(t, ed.BeginEdit(1))
	assert.Equal(t, Editing, ed.Mode())
	assert.Equal(t, int64(1), ed.EditingID())
	ed.Cancel()
	assert.ErrorIs(t, ed.BeginEdit(42), ErrUnknownItem)
}

func TestEditUpdatesById(t *testing.T) {
	ed, res := newProjects(project.Project{ID: 7, Title: "Old", Description: "d", Role: "r"})
	ctx := context.Background()
	require.NoError(t, ed.Refresh(ctx))
	require.NoError(t, ed.BeginEdit(7))
	require.NoError(t, ed.Edit(func(p *project.Project) { p.Title = "New" }))
	require.NoError(t, ed.Submit(ctx))

	assert.Equal(t, []string{"list", "update", "list"}, res.Calls())
	assert.Equal(t, "New", ed.Items()[0].Title)
	assert.Equal(t, "Project updated successfully!", ed.Notice())
}

func TestCancelledEditLeavesListUntouched(t *testing.T) {
	ed, res := newProjects(project.Project{ID: 1, Title: "Shop", Technologies: []string{"go", "sql"}})
	ctx := context.Background()
	require.NoError(t, ed.Refresh(ctx))
	require.NoError(t, ed.BeginEdit(1))
	require.NoError(t, ed.Edit(func(p *project.Project) {
		p.Technologies[0] = "EDITED"
		p.Technologies = append(p.Technologies, "redis")
	}))
	ed.Cancel()

	assert.Equal(t, []string{"go", "sql"}, ed.Items()[0].Technologies)
	assert.Equal(t, []string{"list"}, res.Calls())

	require.NoError(t, ed.BeginEdit(1))
	d := ed.Draft()
	d.Technologies[1] = "changed"
	assert.Equal(t, []string{"go", "sql"}, ed.Draft().Technologies)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	ed, res := newProjects()
	res.failErr = &client.RequestError{
		Status:  http.StatusBadRequest,
		Message: "title: Project title is required",
		Fields:  map[string]string{"title": "Project title is required"},
	}
	require.NoError(t, ed.BeginCreate(validProject()))
	err := ed.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Creating, ed.Mode())
	errs := ed.Errors()
	assert.Equal(t, "Project title is required", errs["title"])
	assert.Equal(t, "title: Project title is required", errs[SubmitKey])
	assert.Equal(t, "Folio", ed.Draft().Title)
	assert.Equal(t, []string{"create"}, res.Calls(), "no refetch after a failed save")

	res.failErr = &client.RequestError{Status: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
	_ = ed.Submit(context.Background())
	assert.Equal(t, "Failed to save project", ed.Errors()[SubmitKey])

	res.failErr = &client.TransportError{Err: errors.New("dial tcp: refused")}
	_ = ed.Submit(context.Background())
	assert.Equal(t, NetworkMessage, ed.Errors()[SubmitKey])
}

func TestSecondSubmitWhileInFlight(t *testing.T) {
	ed, res := newProjects()
	res.block = make(chan struct{})
	require.NoError(t, ed.BeginCreate(validProject()))

	done := make(chan error, 1)
	go func() { done <- ed.Submit(context.Background()) }()
	require.Eventually(t, func() bool { return ed.Mode() == Submitting }, time.Second, time.Millisecond)

	assert.ErrorIs(t, ed.Submit(context.Background()), ErrSubmitInFlight)
	close(res.block)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"create", "list"}, res.Calls())
}

func TestDeleteWithoutConfirmation(t *testing.T) {
	ed, res := newProjects(project.Project{ID: 1, Title: "keep"})
	ctx := context.Background()
	require.NoError(t, ed.Refresh(ctx))
	before := ed.Items()

	err := ed.Delete(ctx, 1, ConfirmFunc(func(string) bool { return false }))
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, []string{"list"}, res.Calls())
	assert.Equal(t, before, ed.Items())

	require.NoError(t, ed.Delete(ctx, 1, ConfirmFunc(func(string) bool { return true })))
	assert.Equal(t, []string{"list", "delete", "list"}, res.Calls())
	assert.Empty(t, ed.Items())
	assert.Equal(t, "Project deleted successfully!", ed.Notice())
}

func TestLateAnswerAfterClose(t *testing.T) {
	ed, res := newProjects()
	res.block = make(chan struct{})
	require.NoError(t, ed.BeginCreate(validProject()))

	done := make(chan error, 1)
	go func() { done <- ed.Submit(context.Background()) }()
	require.Eventually(t, func() bool { return ed.Mode() == Submitting }, time.Second, time.Millisecond)

	ed.Close()
	close(res.block)
	assert.ErrorIs(t, <-done, ErrClosed)
	assert.Empty(t, ed.Items())
	assert.Empty(t, ed.Notice())
	assert.Equal(t, []string{"create"}, res.Calls())
}

func TestSetBlogTitleSuggestsSlug(t *testing.T) {
	ed, _ := newBlogs()
	require.NoError(t, ed.BeginCreate(blog.Post{}))
	require.NoError(t, SetBlogTitle(ed, "Hello World"))
	assert.Equal(t, "hello-world", ed.Draft().Slug)

	require.NoError(t, ed.Edit(func(p *blog.Post) { p.Slug = "custom" }))
	require.NoError(t, SetBlogTitle(ed, "Another"))
	assert.Equal(t, "custom", ed.Draft().Slug)
}
