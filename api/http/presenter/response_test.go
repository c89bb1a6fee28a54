package presenter

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/pkg/validate"
)

func TestValidationError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ValidationError(c, validate.Errors{"slug": "Slug is required", "title": "Title is required"})
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{
		"message": "slug: Slug is required; title: Title is required",
		"errors": {"slug": "Slug is required", "title": "Title is required"}
	}`, string(body))
}

func TestErrorOmitsFields(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return Error(c, fiber.StatusNotFound, "post not found") })
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"post not found"}`, string(body))
}
