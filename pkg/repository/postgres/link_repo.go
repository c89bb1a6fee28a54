package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/portfolio/pkg/profile"
)

// LinkRepository хранит ссылки на соцсети.
type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(pool *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

const linkColumns = `id, user_id, platform, url, is_active, created_at, updated_at`

func (r *LinkRepository) ListLinks(ctx context.Context, userID int64) ([]profile.SocialLink, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+linkColumns+` FROM social_links WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []profile.SocialLink{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LinkRepository) CreateLink(ctx context.Context, l profile.SocialLink) (profile.SocialLink, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO social_links (user_id, platform, url, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING `+linkColumns, l.UserID, l.Platform, l.URL, l.IsActive)
	return scanLink(row)
}

func (r *LinkRepository) UpdateLink(ctx context.Context, l profile.SocialLink) (profile.SocialLink, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE social_links SET platform = $3, url = $4, is_active = $5, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+linkColumns, l.ID, l.UserID, l.Platform, l.URL, l.IsActive)
	out, err := scanLink(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.SocialLink{}, profile.ErrNotFound
	}
	return out, err
}

func (r *LinkRepository) DeleteLink(ctx context.Context, userID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM social_links WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func scanLink(row pgx.Row) (profile.SocialLink, error) {
	var l profile.SocialLink
	err := row.Scan(&l.ID, &l.UserID, &l.Platform, &l.URL, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}
