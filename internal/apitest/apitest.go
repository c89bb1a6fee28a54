// Package apitest runs the portfolio API on in-memory repositories behind a
// real net/http listener. Client side packages use it in their tests.
package apitest

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/require"

	apihttp "github.com/artem13815/portfolio/api/http"
	"github.com/artem13815/portfolio/pkg/mail"
	"github.com/artem13815/portfolio/pkg/media"
	"github.com/artem13815/portfolio/pkg/repository/memory"
)

const (
	AdminUsername = "admin"
	AdminPassword = "secret"
)

type API struct {
	URL     string // base URL ending in /api
	OwnerID int64
	Store   *memory.Store
	Server  *apihttp.Server
}

// Option tweaks the backend before the server is built.
type Option func(*apihttp.Backend)

// WithMail routes contact messages to s.
func WithMail(s mail.Sender) Option {
	return func(b *apihttp.Backend) { b.Mail = s }
}

// Start serves a fresh API with a seeded admin. It is closed with the test.
func Start(t *testing.T, opts ...Option) *API {
	t.Helper()
	store := memory.NewStore()
	dir := t.TempDir()
	b := apihttp.Backend{
		Users:       store.Users,
		Profiles:    store.Users,
		Links:       store.Links,
		Projects:    store.Projects,
		Skills:      store.Skills,
		Categories:  store.Skills,
		Experiences: store.Experiences,
		Blogs:       store.Blogs,
		Revoker:     store.Revoker,
		Images:      media.NewStore(dir, "http://media.test", 0),
	}
	for _, opt := range opts {
		opt(&b)
	}
	srv := apihttp.New(b, apihttp.Settings{
		JWTSecret:     "test-secret",
		JWTIssuer:     "portfolio",
		JWTTTL:        time.Hour,
		AdminUsername: AdminUsername,
		UploadDir:     dir,
	})
	admin, err := srv.Auth.EnsureAdmin(context.Background(), AdminUsername, AdminPassword, "admin@example.com")
	require.NoError(t, err)

	ts := httptest.NewServer(adaptor.FiberApp(srv.App))
	t.Cleanup(ts.Close)
	return &API{URL: ts.URL + "/api", OwnerID: admin.ID, Store: store, Server: srv}
}
