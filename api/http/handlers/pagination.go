package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
	"github.com/artem13815/portfolio/pkg/blog"
)

// MaxLimit caps the limit parameter of list endpoints.
const MaxLimit = 200

// pageQuery reads page, page_size and limit. Absent, malformed or too small
// values come back as zero; values above the cap are clamped to it.
func pageQuery(c *fiber.Ctx) (page, pageSize, limit int) {
	return queryInt(c, "page", 1, blog.MaxPage), queryInt(c, "page_size", 1, blog.MaxPageSize), queryInt(c, "limit", 1, MaxLimit)
}

// queryInt returns zero for values below min; max <= 0 means no cap.
func queryInt(c *fiber.Ctx, key string, min, max int) int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// strconv reports the clamped value on overflow
		var ne *strconv.NumError
		if !errors.As(err, &ne) || ne.Err != strconv.ErrRange || n < 0 {
			return 0
		}
	}
	if n < min {
		return 0
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

func queryBool(c *fiber.Ctx, key string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// paginate slices an in-memory list into the list envelope. Without a
// page_size (or limit) the whole list is one page.
func paginate[T any](c *fiber.Ctx, items []T) presenter.ListResponse[T] {
	page, size, limit := pageQuery(c)
	if limit > 0 {
		page, size = 1, limit
	}
	total := len(items)
	if items == nil {
		items = []T{}
	}
	if size <= 0 {
		return presenter.ListResponse[T]{Results: items, Count: total, TotalPages: 1}
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start < 0 || start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	pages := blog.TotalPages(total, size)
	if limit > 0 {
		pages = 1
	}
	return presenter.ListResponse[T]{Results: items[start:end], Count: total, TotalPages: pages}
}
