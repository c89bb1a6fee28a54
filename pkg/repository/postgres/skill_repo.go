package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/portfolio/pkg/skill"
)

// SkillRepository implements skill.Repository and skill.CategoryRepository.
type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

const groupSelect = `
	SELECT s.id, s.user_id, s.category_id, s.skills_list, s.created_at, s.updated_at,
	       c.id, c.name, c.description, c.created_at
	FROM skills s JOIN skill_categories c ON c.id = s.category_id`

func (r *SkillRepository) List(ctx context.Context, userID int64) ([]skill.Group, error) {
	rows, err := r.pool.Query(ctx, groupSelect+` WHERE s.user_id = $1 ORDER BY s.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []skill.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *SkillRepository) Get(ctx context.Context, userID, id int64) (skill.Group, error) {
	g, err := scanGroup(r.pool.QueryRow(ctx, groupSelect+` WHERE s.id = $1 AND s.user_id = $2`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return skill.Group{}, skill.ErrNotFound
	}
	return g, err
}

func (r *SkillRepository) Create(ctx context.Context, g skill.Group) (skill.Group, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO skills (user_id, category_id, skills_list) VALUES ($1, $2, $3) RETURNING id
	`, g.UserID, g.CategoryID, g.Skills).Scan(&id)
	if err != nil {
		return skill.Group{}, err
	}
	return r.Get(ctx, g.UserID, id)
}

func (r *SkillRepository) Update(ctx context.Context, g skill.Group) (skill.Group, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE skills SET category_id = $3, skills_list = $4, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`, g.ID, g.UserID, g.CategoryID, g.Skills)
	if err != nil {
		return skill.Group{}, err
	}
	if tag.RowsAffected() == 0 {
		return skill.Group{}, skill.ErrNotFound
	}
	return r.Get(ctx, g.UserID, g.ID)
}

func (r *SkillRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func (r *SkillRepository) ListCategories(ctx context.Context) ([]skill.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, created_at FROM skill_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []skill.Category{}
	for rows.Next() {
		var c skill.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SkillRepository) GetCategory(ctx context.Context, id int64) (skill.Category, error) {
	var c skill.Category
	err := r.pool.QueryRow(ctx, `SELECT id, name, description, created_at FROM skill_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return skill.Category{}, skill.ErrNotFound
	}
	return c, err
}

func (r *SkillRepository) CreateCategory(ctx context.Context, c skill.Category) (skill.Category, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO skill_categories (name, description) VALUES ($1, $2) RETURNING id, created_at
	`, c.Name, c.Description).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return skill.Category{}, skill.ErrCategoryExists
		}
		return skill.Category{}, err
	}
	return c, nil
}

func scanGroup(row pgx.Row) (skill.Group, error) {
	var g skill.Group
	err := row.Scan(&g.ID, &g.UserID, &g.CategoryID, &g.Skills, &g.CreatedAt, &g.UpdatedAt,
		&g.Category.ID, &g.Category.Name, &g.Category.Description, &g.Category.CreatedAt)
	if g.Skills == nil {
		g.Skills = []string{}
	}
	return g, err
}
