package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/portfolio/pkg/project"
)

// ProjectRepository хранит проекты и их технологии.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, user_id, title, description, role, technologies, project_url, github_url, is_active, created_at, updated_at`

func (r *ProjectRepository) List(ctx context.Context, userID int64) ([]project.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) Get(ctx context.Context, userID, id int64) (project.Project, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return project.Project{}, project.ErrNotFound
	}
	return p, err
}

func (r *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (user_id, title, description, role, technologies, project_url, github_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+projectColumns,
		p.UserID, p.Title, p.Description, p.Role, p.Technologies, p.ProjectURL, p.GithubURL, p.IsActive)
	return scanProject(row)
}

func (r *ProjectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET title = $3, description = $4, role = $5, technologies = $6,
		    project_url = $7, github_url = $8, is_active = $9, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+projectColumns,
		p.ID, p.UserID, p.Title, p.Description, p.Role, p.Technologies, p.ProjectURL, p.GithubURL, p.IsActive)
	out, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return project.Project{}, project.ErrNotFound
	}
	return out, err
}

func (r *ProjectRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Role, &p.Technologies,
		&p.ProjectURL, &p.GithubURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p, err
}
