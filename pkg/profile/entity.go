package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/skill"
)

var ErrNotFound = errors.New("not found")

// Profile описывает владельца портфолио, показанного на публичной странице.
type Profile struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Bio          string    `json:"bio"`
	ProfilePhoto string    `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Patch carries the fields of a partial profile update; nil means unchanged.
type Patch struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
}

func (pt Patch) Apply(p Profile) Profile {
	if pt.FirstName != nil {
		p.FirstName = strings.TrimSpace(*pt.FirstName)
	}
	if pt.LastName != nil {
		p.LastName = strings.TrimSpace(*pt.LastName)
	}
	if pt.Email != nil {
		p.Email = strings.TrimSpace(*pt.Email)
	}
	if pt.Bio != nil {
		p.Bio = *pt.Bio
	}
	if pt.ProfilePhoto != nil {
		p.ProfilePhoto = strings.TrimSpace(*pt.ProfilePhoto)
	}
	return p
}

// SocialLink: ссылка на внешний аккаунт владельца.
type SocialLink struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Data is the aggregate returned by the public profile endpoint.
type Data struct {
	User           Profile                 `json:"user"`
	SocialLinks    []SocialLink            `json:"social_links"`
	Projects       []project.Project       `json:"projects"`
	Skills         []skill.Group           `json:"skills"`
	WorkExperience []experience.Experience `json:"work_experience"`
}

// Repository: порт хранения профиля.
type Repository interface {
	Get(ctx context.Context, userID int64) (Profile, error)
	Update(ctx context.Context, p Profile) (Profile, error)
}

// LinkRepository: порт хранения ссылок на соцсети.
type LinkRepository interface {
	ListLinks(ctx context.Context, userID int64) ([]SocialLink, error)
	CreateLink(ctx context.Context, l SocialLink) (SocialLink, error)
	UpdateLink(ctx context.Context, l SocialLink) (SocialLink, error)
	DeleteLink(ctx context.Context, userID, id int64) error
}
