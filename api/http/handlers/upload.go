package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
)

// ImageStore persists an uploaded image and returns its public URL.
type ImageStore interface {
	Save(ctx context.Context, folder, filename string, r io.Reader) (string, error)
}

// saveImage stores the multipart field and answers {url}. The owning record
// is not touched; clients merge the URL into their draft and save it later.
func saveImage(c *fiber.Ctx, store ImageStore, field, folder string) error {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, field+" file is required")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	url, err := store.Save(c.Context(), folder, fh.Filename, file)
	if err != nil {
		return fail(c, "upload "+folder, err, "failed to store file")
	}
	return presenter.JSON(c, http.StatusCreated, presenter.URLResponse{URL: url})
}
