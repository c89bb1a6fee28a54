package profile_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/pkg/auth"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/repository/memory"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, profile.MediaNone, profile.KindOf(" "))
	assert.Equal(t, profile.MediaPhoto, profile.KindOf("http://x/uploads/profile/a.png"))
	assert.Equal(t, profile.MediaAnimation, profile.KindOf("https://lottie.host/abc/anim.lottie"))
	assert.Equal(t, profile.MediaAnimation, profile.KindOf("https://cdn.example.com/hero.json"))
}

func TestValidateLink(t *testing.T) {
	cases := []struct {
		platform, url string
		valid         bool
	}{
		{"github", "https://github.com/me", true},
		{"github", "github.com/me", false},
		{"whatsapp", "https://wa.me/123", true},
		{"whatsapp", "https://example.com/123", false},
		{"telegram", "https://t.me/me", true},
		{"email", "mailto:me@example.com", true},
		{"email", "me@example.com", false},
		{"phone", "tel:+123", true},
		{"myspace", "https://myspace.com/me", false},
	}
	for _, tc := range cases {
		errs := profile.ValidateLink(profile.SocialLink{Platform: tc.platform, URL: tc.url})
		assert.Equal(t, tc.valid, len(errs) == 0, "%s %s", tc.platform, tc.url)
	}
}

func TestPatchApply(t *testing.T) {
	p := profile.Profile{FirstName: "Ada", LastName: "Lovelace", Bio: "old"}
	bio := "new"
	out := profile.Patch{Bio: &bio}.Apply(p)
	assert.Equal(t, "Ada", out.FirstName)
	assert.Equal(t, "new", out.Bio)
	assert.Equal(t, "Ada Lovelace", out.FullName())
}

func TestDataHidesInactiveForVisitors(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	u, err := store.Users.Create(ctx, auth.User{Username: gofakeit.Username()})
	require.NoError(t, err)

	_, err = store.Projects.Create(ctx, project.Project{UserID: u.ID, Title: "on", IsActive: true})
	require.NoError(t, err)
	_, err = store.Projects.Create(ctx, project.Project{UserID: u.ID, Title: "off"})
	require.NoError(t, err)
	_, err = store.Links.CreateLink(ctx, profile.SocialLink{UserID: u.ID, Platform: "github", URL: "https://github.com/x"})
	require.NoError(t, err)

	svc := profile.NewService(profile.Deps{
		Profiles:    store.Users,
		Links:       store.Links,
		Projects:    store.Projects,
		Skills:      store.Skills,
		Experiences: store.Experiences,
	})
	public, err := svc.Data(ctx, u.ID, false)
	require.NoError(t, err)
	assert.Len(t, public.Projects, 1)
	assert.Empty(t, public.SocialLinks)
	assert.NotNil(t, public.Skills)

	own, err := svc.Data(ctx, u.ID, true)
	require.NoError(t, err)
	assert.Len(t, own.Projects, 2)
	assert.Len(t, own.SocialLinks, 1)
}

func TestUpdateValidates(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	u, err := store.Users.Create(ctx, auth.User{Username: "owner"})
	require.NoError(t, err)
	svc := profile.NewService(profile.Deps{Profiles: store.Users, Links: store.Links})

	bad := "not-an-email"
	_, err = svc.Update(ctx, u.ID, profile.Patch{Email: &bad})
	assert.Error(t, err)

	first, last, email := "Ada", "Lovelace", "ada@example.com"
	p, err := svc.Update(ctx, u.ID, profile.Patch{FirstName: &first, LastName: &last, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.FullName())
}
