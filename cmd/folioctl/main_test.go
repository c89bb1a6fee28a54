package main

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/internal/apitest"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/validate"
)

func run(t *testing.T, api *apitest.API, session string, args ...string) error {
	t.Helper()
	cmd := rootCmd()
	cmd.SetArgs(append([]string{
		"--api-url", api.URL,
		"--subject-id", strconv.FormatInt(api.OwnerID, 10),
		"--session-file", session,
	}, args...))
	return cmd.ExecuteContext(context.Background())
}

func TestConsoleFlow(t *testing.T) {
	api := apitest.Start(t)
	session := filepath.Join(t.TempDir(), "session.yaml")

	err := run(t, api, session, "projects", "list")
	assert.Error(t, err, "commands need a login")

	require.NoError(t, run(t, api, session, "login", "-u", apitest.AdminUsername, "-p", apitest.AdminPassword))

	err = run(t, api, session, "projects", "create", "--title", "Folio")
	var fields validate.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "description")

	require.NoError(t, run(t, api, session, "projects", "create",
		"--title", "Folio", "--description", "Site", "--role", "Author", "--tech", "Go, Fiber", "--active"))
	items, err := api.Store.Projects.List(context.Background(), api.OwnerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"Go", "Fiber"}, items[0].Technologies)

	require.NoError(t, run(t, api, session, "blogs", "create", "--title", "Hello World", "--content", "Body", "--tags", "intro"))
	require.NoError(t, run(t, api, session, "blogs", "list"))

	id := strconv.FormatInt(items[0].ID, 10)
	require.NoError(t, run(t, api, session, "projects", "delete", id, "--yes"))
	items, err = api.Store.Projects.List(context.Background(), api.OwnerID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, run(t, api, session, "logout"))
	assert.Error(t, run(t, api, session, "blogs", "list"))
}

func TestDescribe(t *testing.T) {
	err := &client.RequestError{Status: 400, Message: "bad", Fields: map[string]string{"slug": "taken"}}
	assert.Equal(t, "slug: taken", describe(err))
	assert.Equal(t, "bad", describe(&client.RequestError{Status: 400, Message: "bad"}))
	assert.Equal(t, "title: required", describe(validate.Errors{"title": "required"}))
}
