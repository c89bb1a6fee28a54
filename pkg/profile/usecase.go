package profile

import (
	"context"
	"strings"

	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/skill"
)

// UseCase инкапсулирует работу с профилем и ссылками на соцсети.
type UseCase interface {
	// Data assembles the public page aggregate. Inactive projects and links
	// are included only when withHidden is set (the owner is asking).
	Data(ctx context.Context, userID int64, withHidden bool) (Data, error)
	Get(ctx context.Context, userID int64) (Profile, error)
	Update(ctx context.Context, userID int64, patch Patch) (Profile, error)

	Links(ctx context.Context, userID int64, withHidden bool) ([]SocialLink, error)
	CreateLink(ctx context.Context, userID int64, l SocialLink) (SocialLink, error)
	UpdateLink(ctx context.Context, userID, id int64, l SocialLink) (SocialLink, error)
	DeleteLink(ctx context.Context, userID, id int64) error
}

type Deps struct {
	Profiles    Repository
	Links       LinkRepository
	Projects    project.Repository
	Skills      skill.Repository
	Experiences experience.Repository
}

type service struct {
	d Deps
}

func NewService(d Deps) UseCase { return &service{d: d} }

func (s *service) Data(ctx context.Context, userID int64, withHidden bool) (Data, error) {
	p, err := s.d.Profiles.Get(ctx, userID)
	if err != nil {
		return Data{}, err
	}
	links, err := s.Links(ctx, userID, withHidden)
	if err != nil {
		return Data{}, err
	}
	projects, err := s.d.Projects.List(ctx, userID)
	if err != nil {
		return Data{}, err
	}
	if !withHidden {
		projects = project.Showcase(projects)
	}
	groups, err := skill.NewService(s.d.Skills, nil).List(ctx, userID)
	if err != nil {
		return Data{}, err
	}
	jobs, err := s.d.Experiences.List(ctx, userID)
	if err != nil {
		return Data{}, err
	}
	return Data{
		User:           p,
		SocialLinks:    nonNil(links),
		Projects:       nonNil(projects),
		Skills:         nonNil(groups),
		WorkExperience: nonNil(jobs),
	}, nil
}

func (s *service) Get(ctx context.Context, userID int64) (Profile, error) {
	return s.d.Profiles.Get(ctx, userID)
}

func (s *service) Update(ctx context.Context, userID int64, patch Patch) (Profile, error) {
	current, err := s.d.Profiles.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	next := patch.Apply(current)
	if err := Validate(next).Err(); err != nil {
		return Profile{}, err
	}
	return s.d.Profiles.Update(ctx, next)
}

func (s *service) Links(ctx context.Context, userID int64, withHidden bool) ([]SocialLink, error) {
	links, err := s.d.Links.ListLinks(ctx, userID)
	if err != nil {
		return nil, err
	}
	if withHidden {
		return links, nil
	}
	out := make([]SocialLink, 0, len(links))
	for _, l := range links {
		if l.IsActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *service) CreateLink(ctx context.Context, userID int64, l SocialLink) (SocialLink, error) {
	l = normalizeLink(l)
	if err := ValidateLink(l).Err(); err != nil {
		return SocialLink{}, err
	}
	l.ID = 0
	l.UserID = userID
	return s.d.Links.CreateLink(ctx, l)
}

func (s *service) UpdateLink(ctx context.Context, userID, id int64, l SocialLink) (SocialLink, error) {
	l = normalizeLink(l)
	if err := ValidateLink(l).Err(); err != nil {
		return SocialLink{}, err
	}
	l.ID = id
	l.UserID = userID
	return s.d.Links.UpdateLink(ctx, l)
}

func (s *service) DeleteLink(ctx context.Context, userID, id int64) error {
	return s.d.Links.DeleteLink(ctx, userID, id)
}

func normalizeLink(l SocialLink) SocialLink {
	l.Platform = strings.ToLower(strings.TrimSpace(l.Platform))
	l.URL = strings.TrimSpace(l.URL)
	return l
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
