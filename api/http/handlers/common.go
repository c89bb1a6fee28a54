package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/media"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/security/jwt"
	"github.com/artem13815/portfolio/pkg/skill"
	"github.com/artem13815/portfolio/pkg/validate"
)

// fail converts a use case error into a response. Unknown errors are logged
// under op and answered with fallback.
func fail(c *fiber.Ctx, op string, err error, fallback string) error {
	var fields validate.Errors
	switch {
	case errors.As(err, &fields):
		return presenter.ValidationError(c, fields)
	case errors.Is(err, profile.ErrNotFound), errors.Is(err, project.ErrNotFound),
		errors.Is(err, skill.ErrNotFound), errors.Is(err, experience.ErrNotFound),
		errors.Is(err, blog.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "not found")
	case errors.Is(err, blog.ErrSlugTaken):
		return presenter.ValidationError(c, validate.Errors{"slug": "A post with this slug already exists"})
	case errors.Is(err, skill.ErrCategoryExists):
		return presenter.ValidationError(c, validate.Errors{"name": "Category already exists"})
	case errors.Is(err, media.ErrTooLarge), errors.Is(err, media.ErrNotImage):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	log.Printf("%s: %v", op, err)
	return presenter.Error(c, http.StatusInternalServerError, fallback)
}

func pathID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	return id, err == nil && id > 0
}

// RequireOwner lets through only the authenticated owner of :userId.
// It must run after the auth middleware.
func RequireOwner(c *fiber.Ctx) error {
	owner, ok := pathID(c, "userId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	if uid != owner {
		return presenter.Error(c, http.StatusForbidden, "you can only modify your own portfolio")
	}
	return c.Next()
}

// isOwner reports whether an optional token belongs to :userId.
func isOwner(c *fiber.Ctx, userID int64) bool {
	uid, ok := jwt.UserID(c)
	return ok && uid == userID
}

func badJSON(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
}
