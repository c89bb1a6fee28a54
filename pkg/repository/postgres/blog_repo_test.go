package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/portfolio/pkg/blog"
)

func TestBuildWhere(t *testing.T) {
	where, args := buildWhere(blog.ListFilter{
		AuthorID:     1,
		Status:       blog.StatusPublished,
		FeaturedOnly: true,
		ExcludeID:    9,
		Search:       "50%_off",
	})
	assert.Equal(t,
		" WHERE author_id = $1 AND status = $2 AND is_featured AND id <> $3"+
			" AND (title ILIKE $4 OR content ILIKE $4 OR excerpt ILIKE $4)",
		where)
	assert.Equal(t, []any{int64(1), "published", int64(9), `%50\%\_off%`}, args)

	where, args = buildWhere(blog.ListFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildOrder(t *testing.T) {
	assert.Equal(t, " ORDER BY views DESC NULLS LAST, created_at DESC NULLS LAST, id DESC",
		buildOrder(blog.ParseOrdering("-views,-created_at")))
	assert.Equal(t, " ORDER BY title ASC NULLS LAST, id DESC",
		buildOrder([]blog.Order{{Field: "title"}, {Field: "password_hash"}}))
}
