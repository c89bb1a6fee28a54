package project

import (
	"context"
	"errors"
	"sort"
	"time"
)

var ErrNotFound = errors.New("not found")

// Project описывает проект портфолио. Публично видны только активные.
type Project struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Role         string    `json:"role"`
	Technologies []string  `json:"technologies"`
	ProjectURL   *string   `json:"project_url"`
	GithubURL    *string   `json:"github_url"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Project) Clone() Project {
	p.Technologies = append([]string(nil), p.Technologies...)
	p.ProjectURL = cloneString(p.ProjectURL)
	p.GithubURL = cloneString(p.GithubURL)
	return p
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Repository: порт хранения проектов.
type Repository interface {
	// List returns every project of the owner, newest id first.
	List(ctx context.Context, userID int64) ([]Project, error)
	Get(ctx context.Context, userID, id int64) (Project, error)
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	Delete(ctx context.Context, userID, id int64) error
}

// Showcase returns the active projects ordered by id descending.
func Showcase(items []Project) []Project {
	out := make([]Project, 0, len(items))
	for _, p := range items {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}
