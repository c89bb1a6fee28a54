package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/pkg/auth"
)

type setRevoker struct {
	mu  sync.Mutex
	ids map[string]bool
}

func (r *setRevoker) Revoke(_ context.Context, id string, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ids == nil {
		r.ids = map[string]bool{}
	}
	r.ids[id] = true
	return nil
}

func (r *setRevoker) Revoked(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ids[id], nil
}

func TestGenerateAndParse(t *testing.T) {
	gen := NewGenerator("secret", "portfolio", time.Hour)
	tok, err := gen.Generate(context.Background(), auth.User{ID: 7, IsAdmin: true})
	require.NoError(t, err)

	claims, err := NewVerifier("secret", "portfolio", nil).Parse(context.Background(), tok)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)

	_, err = NewVerifier("other", "portfolio", nil).Parse(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = NewVerifier("secret", "someone-else", nil).Parse(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc", ExtractToken("Token abc"))
	assert.Equal(t, "abc", ExtractToken("Bearer abc"))
	assert.Equal(t, "abc", ExtractToken("bearer  abc"))
	assert.Equal(t, "abc", ExtractToken("abc"))
	assert.Equal(t, "", ExtractToken(""))
}

func TestMiddleware(t *testing.T) {
	rev := &setRevoker{}
	gen := NewGenerator("secret", "portfolio", time.Hour)
	v := NewVerifier("secret", "portfolio", rev)

	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(v), func(c *fiber.Ctx) error {
		id, _ := UserID(c)
		return c.JSON(fiber.Map{"id": id})
	})

	tok, err := gen.Generate(context.Background(), auth.User{ID: 3})
	require.NoError(t, err)

	resp := do(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, "Token "+tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"id":3}`, string(body))

	claims, err := v.Parse(context.Background(), tok)
	require.NoError(t, err)
	require.NoError(t, rev.Revoke(context.Background(), claims.ID, time.Now().Add(time.Hour)))

	resp = do(t, app, "Token "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalMiddleware(t *testing.T) {
	v := NewVerifier("secret", "", nil)
	app := fiber.New()
	app.Get("/me", NewOptionalAuthMiddleware(v), func(c *fiber.Ctx) error {
		_, ok := UserID(c)
		return c.JSON(fiber.Map{"auth": ok})
	})

	resp := do(t, app, "Token garbage")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"auth":false}`, string(body))
}

func do(t *testing.T, app *fiber.App, authz string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}
