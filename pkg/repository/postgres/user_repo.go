package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/portfolio/pkg/auth"
	"github.com/artem13815/portfolio/pkg/profile"
)

// UserRepository implements auth.UserRepository and profile.Repository
// backed by PostgreSQL (pgx). The profile lives on the users row.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) (auth.User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`, strings.ToLower(user.Username), strings.ToLower(user.Email), user.PasswordHash, user.IsAdmin, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return auth.User{}, auth.ErrUserAlreadyExists
		}
		return auth.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, is_admin, created_at
		FROM users WHERE username = $1
	`, strings.ToLower(username))
	var user auth.User
	var createdAt time.Time
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsAdmin, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	user.CreatedAt = createdAt.UTC()
	return user, nil
}

func (r *UserRepository) SetPassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, hash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

const profileColumns = `id, username, email, first_name, last_name, bio, profile_photo, created_at, updated_at`

func (r *UserRepository) Get(ctx context.Context, userID int64) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM users WHERE id = $1`, userID)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, err
}

func (r *UserRepository) Update(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, bio = $5, profile_photo = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+profileColumns,
		p.ID, p.Email, p.FirstName, p.LastName, p.Bio, p.ProfilePhoto)
	out, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.Profile{}, profile.ErrNotFound
	}
	return out, err
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.FirstName, &p.LastName, &p.Bio, &p.ProfilePhoto, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
