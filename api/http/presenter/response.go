package presenter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/pkg/validate"
)

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ListResponse is the paginated list envelope.
type ListResponse[T any] struct {
	Results    []T `json:"results"`
	Count      int `json:"count"`
	TotalPages int `json:"total_pages"`
}

// URLResponse answers media uploads.
type URLResponse struct {
	URL string `json:"url"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// ValidationError answers 400 with per-field messages. The first message
// in field order doubles as the top-level message.
func ValidationError(c *fiber.Ctx, errs validate.Errors) error {
	return JSON(c, fiber.StatusBadRequest, ErrorResponse{Message: errs.Error(), Errors: errs})
}
