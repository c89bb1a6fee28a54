package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/portfolio/pkg/experience"
)

// ExperienceRepository хранит опыт работы.
type ExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewExperienceRepository(pool *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{pool: pool}
}

// dates travel as YYYY-MM-DD text both ways
const experienceColumns = `id, user_id, company, position, description,
	to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
	is_current, technologies_used, created_at, updated_at`

func (r *ExperienceRepository) List(ctx context.Context, userID int64) ([]experience.Experience, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+experienceColumns+` FROM work_experience
		WHERE user_id = $1 ORDER BY start_date DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []experience.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExperienceRepository) Get(ctx context.Context, userID, id int64) (experience.Experience, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+experienceColumns+` FROM work_experience WHERE id = $1 AND user_id = $2`, id, userID)
	e, err := scanExperience(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return experience.Experience{}, experience.ErrNotFound
	}
	return e, err
}

func (r *ExperienceRepository) Create(ctx context.Context, e experience.Experience) (experience.Experience, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO work_experience (user_id, company, position, description, start_date, end_date, is_current, technologies_used)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8)
		RETURNING `+experienceColumns,
		e.UserID, e.Company, e.Position, e.Description, e.StartDate, e.EndDate, e.IsCurrent, e.Technologies)
	return scanExperience(row)
}

func (r *ExperienceRepository) Update(ctx context.Context, e experience.Experience) (experience.Experience, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE work_experience
		SET company = $3, position = $4, description = $5, start_date = $6::date, end_date = $7::date,
		    is_current = $8, technologies_used = $9, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+experienceColumns,
		e.ID, e.UserID, e.Company, e.Position, e.Description, e.StartDate, e.EndDate, e.IsCurrent, e.Technologies)
	out, err := scanExperience(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return experience.Experience{}, experience.ErrNotFound
	}
	return out, err
}

func (r *ExperienceRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM work_experience WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return experience.ErrNotFound
	}
	return nil
}

func scanExperience(row pgx.Row) (experience.Experience, error) {
	var e experience.Experience
	err := row.Scan(&e.ID, &e.UserID, &e.Company, &e.Position, &e.Description, &e.StartDate, &e.EndDate,
		&e.IsCurrent, &e.Technologies, &e.CreatedAt, &e.UpdatedAt)
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
	return e, err
}
