package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/portfolio/pkg/blog"
)

// BlogRepository хранит статьи блога.
type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

const postColumns = `id, author_id, title, slug, content, excerpt, tags, read_time, views,
	is_featured, status, featured_image, published_at, created_at, updated_at`

// orderColumns maps sortable fields to SQL; nothing else reaches ORDER BY.
var orderColumns = map[string]string{
	"id":           "id",
	"title":        "title",
	"views":        "views",
	"read_time":    "read_time",
	"created_at":   "created_at",
	"published_at": "published_at",
}

func (r *BlogRepository) List(ctx context.Context, f blog.ListFilter) ([]blog.Post, int, error) {
	where, args := buildWhere(f)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM blog_posts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + postColumns + ` FROM blog_posts` + where + buildOrder(f.Ordering)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := []blog.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func buildWhere(f blog.ListFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.AuthorID != 0 {
		add("author_id = $%d", f.AuthorID)
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.FeaturedOnly {
		conds = append(conds, "is_featured")
	}
	if f.ExcludeID != 0 {
		add("id <> $%d", f.ExcludeID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		add("(title ILIKE $%[1]d OR content ILIKE $%[1]d OR excerpt ILIKE $%[1]d)", "%"+escapeLike(s)+"%")
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildOrder(order []blog.Order) string {
	parts := make([]string, 0, len(order)+1)
	for _, o := range order {
		col, ok := orderColumns[o.Field]
		if !ok {
			continue
		}
		if o.Desc {
			parts = append(parts, col+" DESC NULLS LAST")
		} else {
			parts = append(parts, col+" ASC NULLS LAST")
		}
	}
	parts = append(parts, "id DESC")
	return " ORDER BY " + strings.Join(parts, ", ")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *BlogRepository) Get(ctx context.Context, id int64) (blog.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return blog.Post{}, blog.ErrNotFound
	}
	return p, err
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (blog.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return blog.Post{}, blog.ErrNotFound
	}
	return p, err
}

func (r *BlogRepository) Create(ctx context.Context, p blog.Post) (blog.Post, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO blog_posts (author_id, title, slug, content, excerpt, tags, read_time, views,
			is_featured, status, featured_image, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10, $11, $12, $13)
		RETURNING `+postColumns,
		p.AuthorID, p.Title, p.Slug, p.Content, p.Excerpt, p.Tags, p.ReadTime,
		p.IsFeatured, string(p.Status), p.FeaturedImage, p.PublishedAt, p.CreatedAt, p.UpdatedAt)
	out, err := scanPost(row)
	if err != nil && isUniqueViolation(err) {
		return blog.Post{}, blog.ErrSlugTaken
	}
	return out, err
}

// Update не трогает slug, views и created_at.
func (r *BlogRepository) Update(ctx context.Context, p blog.Post) (blog.Post, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE blog_posts
		SET title = $2, content = $3, excerpt = $4, tags = $5, read_time = $6, is_featured = $7,
		    status = $8, featured_image = $9, published_at = $10, updated_at = $11
		WHERE id = $1
		RETURNING `+postColumns,
		p.ID, p.Title, p.Content, p.Excerpt, p.Tags, p.ReadTime, p.IsFeatured,
		string(p.Status), p.FeaturedImage, p.PublishedAt, p.UpdatedAt)
	out, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return blog.Post{}, blog.ErrNotFound
	}
	return out, err
}

func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) IncrementViews(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE blog_posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (blog.Post, error) {
	var p blog.Post
	var status string
	err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Tags, &p.ReadTime, &p.Views,
		&p.IsFeatured, &status, &p.FeaturedImage, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	p.Status = blog.Status(status)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, err
}
