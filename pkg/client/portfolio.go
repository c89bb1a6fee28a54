package client

import (
	"context"
	"net/http"

	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/skill"
)

// Profile fetches the public page aggregate of the subject. With authAware
// set the admin token is sent so hidden items come back too.
func (c *Client) Profile(ctx context.Context, authAware bool) (profile.Data, error) {
	var out profile.Data
	err := c.do(ctx, call{method: http.MethodGet, path: c.userPath("/profile/"), auth: authAware}, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, patch profile.Patch) (profile.Profile, error) {
	var out profile.Profile
	err := c.do(ctx, call{method: http.MethodPatch, path: "/users/profile/", body: patch, auth: true}, &out)
	return out, err
}

// Social links

func (c *Client) Links(ctx context.Context, authAware bool) (List[profile.SocialLink], error) {
	return getList[profile.SocialLink](ctx, c, call{method: http.MethodGet, path: c.userPath("/social-links/"), auth: authAware})
}

func (c *Client) CreateLink(ctx context.Context, l profile.SocialLink) (profile.SocialLink, error) {
	var out profile.SocialLink
	err := c.do(ctx, call{method: http.MethodPost, path: c.userPath("/social-links/"), body: l, auth: true}, &out)
	return out, err
}

func (c *Client) UpdateLink(ctx context.Context, id int64, l profile.SocialLink) (profile.SocialLink, error) {
	var out profile.SocialLink
	err := c.do(ctx, call{method: http.MethodPut, path: c.userPath("/social-links/%d/", id), body: l, auth: true}, &out)
	return out, err
}

func (c *Client) DeleteLink(ctx context.Context, id int64) error {
	return c.do(ctx, call{method: http.MethodDelete, path: c.userPath("/social-links/%d/", id), auth: true}, nil)
}

// Projects

func (c *Client) Projects(ctx context.Context, authAware bool) (List[project.Project], error) {
	return getList[project.Project](ctx, c, call{method: http.MethodGet, path: c.userPath("/projects/"), auth: authAware})
}

func (c *Client) CreateProject(ctx context.Context, p project.Project) (project.Project, error) {
	var out project.Project
	err := c.do(ctx, call{method: http.MethodPost, path: c.userPath("/projects/"), body: p, auth: true}, &out)
	return out, err
}

func (c *Client) UpdateProject(ctx context.Context, id int64, p project.Project) (project.Project, error) {
	var out project.Project
	err := c.do(ctx, call{method: http.MethodPut, path: c.userPath("/projects/%d/", id), body: p, auth: true}, &out)
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, call{method: http.MethodDelete, path: c.userPath("/projects/%d/", id), auth: true}, nil)
}

// Skills

func (c *Client) Skills(ctx context.Context) (List[skill.Group], error) {
	return getList[skill.Group](ctx, c, call{method: http.MethodGet, path: c.userPath("/skills/")})
}

func (c *Client) CreateSkill(ctx context.Context, g skill.Group) (skill.Group, error) {
	var out skill.Group
	err := c.do(ctx, call{method: http.MethodPost, path: c.userPath("/skills/"), body: g, auth: true}, &out)
	return out, err
}

func (c *Client) UpdateSkill(ctx context.Context, id int64, g skill.Group) (skill.Group, error) {
	var out skill.Group
	err := c.do(ctx, call{method: http.MethodPut, path: c.userPath("/skills/%d/", id), body: g, auth: true}, &out)
	return out, err
}

func (c *Client) DeleteSkill(ctx context.Context, id int64) error {
	return c.do(ctx, call{method: http.MethodDelete, path: c.userPath("/skills/%d/", id), auth: true}, nil)
}

func (c *Client) Categories(ctx context.Context) (List[skill.Category], error) {
	return getList[skill.Category](ctx, c, call{method: http.MethodGet, path: "/skill-categories/"})
}

func (c *Client) CreateCategory(ctx context.Context, cat skill.Category) (skill.Category, error) {
	var out skill.Category
	err := c.do(ctx, call{method: http.MethodPost, path: "/skill-categories/", body: cat, auth: true}, &out)
	return out, err
}

// Work experience

func (c *Client) Experience(ctx context.Context) (List[experience.Experience], error) {
	return getList[experience.Experience](ctx, c, call{method: http.MethodGet, path: c.userPath("/work-experience/")})
}

func (c *Client) CreateExperience(ctx context.Context, e experience.Experience) (experience.Experience, error) {
	var out experience.Experience
	err := c.do(ctx, call{method: http.MethodPost, path: c.userPath("/work-experience/"), body: e, auth: true}, &out)
	return out, err
}

func (c *Client) UpdateExperience(ctx context.Context, id int64, e experience.Experience) (experience.Experience, error) {
	var out experience.Experience
	err := c.do(ctx, call{method: http.MethodPut, path: c.userPath("/work-experience/%d/", id), body: e, auth: true}, &out)
	return out, err
}

func (c *Client) DeleteExperience(ctx context.Context, id int64) error {
	return c.do(ctx, call{method: http.MethodDelete, path: c.userPath("/work-experience/%d/", id), auth: true}, nil)
}
