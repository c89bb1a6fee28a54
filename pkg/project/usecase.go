package project

import (
	"context"
	"strings"

	"github.com/artem13815/portfolio/pkg/text"
	"github.com/artem13815/portfolio/pkg/validate"
)

// UseCase инкапсулирует работу с проектами владельца.
type UseCase interface {
	List(ctx context.Context, userID int64, onlyActive bool) ([]Project, error)
	Create(ctx context.Context, userID int64, p Project) (Project, error)
	Update(ctx context.Context, userID, id int64, p Project) (Project, error)
	Delete(ctx context.Context, userID, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context, userID int64, onlyActive bool) ([]Project, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if onlyActive {
		return Showcase(items), nil
	}
	return items, nil
}

func (s *service) Create(ctx context.Context, userID int64, p Project) (Project, error) {
	p = normalize(p)
	if err := Validate(p).Err(); err != nil {
		return Project{}, err
	}
	p.ID = 0
	p.UserID = userID
	return s.repo.Create(ctx, p)
}

func (s *service) Update(ctx context.Context, userID, id int64, p Project) (Project, error) {
	current, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return Project{}, err
	}
	p = normalize(p)
	if err := Validate(p).Err(); err != nil {
		return Project{}, err
	}
	p.ID = current.ID
	p.UserID = current.UserID
	p.CreatedAt = current.CreatedAt
	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

func normalize(p Project) Project {
	p.Title = strings.TrimSpace(p.Title)
	p.Role = strings.TrimSpace(p.Role)
	p.Technologies = text.NormalizeList(p.Technologies)
	p.ProjectURL = blankToNil(p.ProjectURL)
	p.GithubURL = blankToNil(p.GithubURL)
	return p
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Validate checks the required project fields and link shapes.
func Validate(p Project) validate.Errors {
	errs := validate.Errors{}
	errs.Required("title", p.Title, "Project title is required")
	errs.Required("description", p.Description, "Project description is required")
	errs.Required("role", p.Role, "Your role is required")
	if p.ProjectURL != nil && *p.ProjectURL != "" && !isHTTP(*p.ProjectURL) {
		errs.Add("project_url", "URL should start with http:// or https://")
	}
	if p.GithubURL != nil && *p.GithubURL != "" && !isHTTP(*p.GithubURL) {
		errs.Add("github_url", "URL should start with http:// or https://")
	}
	return errs
}

func isHTTP(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
