package admin

import (
	"context"

	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/skill"
	"github.com/artem13815/portfolio/pkg/text"
)

var (
	ProjectKind = Kind[project.Project]{
		Label:    "Project",
		Noun:     "project",
		ID:       func(p project.Project) int64 { return p.ID },
		Validate: project.Validate,
		Clone:    project.Project.Clone,
	}
	LinkKind = Kind[profile.SocialLink]{
		Label:    "Social link",
		Noun:     "social link",
		ID:       func(l profile.SocialLink) int64 { return l.ID },
		Validate: profile.ValidateLink,
	}
	ExperienceKind = Kind[experience.Experience]{
		Label:    "Experience",
		Noun:     "experience",
		ID:       func(e experience.Experience) int64 { return e.ID },
		Validate: experience.Validate,
		Clone:    experience.Experience.Clone,
	}
	SkillKind = Kind[skill.Group]{
		Label:    "Skill",
		Noun:     "skill",
		ID:       func(g skill.Group) int64 { return g.ID },
		Validate: skill.Validate,
		Clone:    skill.Group.Clone,
	}
	BlogKind = Kind[blog.Post]{
		Label:    "Blog post",
		Noun:     "blog post",
		ID:       func(p blog.Post) int64 { return p.ID },
		Validate: blog.Validate,
		Clone:    blog.Post.Clone,
	}
)

// ProjectResource and friends bind an editor to the API client.
type ProjectResource struct{ API *client.Client }

func (r ProjectResource) List(ctx context.Context) ([]project.Project, error) {
	l, err := r.API.Projects(ctx, true)
	return l.Items, err
}

func (r ProjectResource) Create(ctx context.Context, p project.Project) (project.Project, error) {
	return r.API.CreateProject(ctx, p)
}

func (r ProjectResource) Update(ctx context.Context, id int64, p project.Project) (project.Project, error) {
	return r.API.UpdateProject(ctx, id, p)
}

func (r ProjectResource) Delete(ctx context.Context, id int64) error {
	return r.API.DeleteProject(ctx, id)
}

type LinkResource struct{ API *client.Client }

func (r LinkResource) List(ctx context.Context) ([]profile.SocialLink, error) {
	l, err := r.API.Links(ctx, true)
	return l.Items, err
}

func (r LinkResource) Create(ctx context.Context, l profile.SocialLink) (profile.SocialLink, error) {
	return r.API.CreateLink(ctx, l)
}

func (r LinkResource) Update(ctx context.Context, id int64, l profile.SocialLink) (profile.SocialLink, error) {
	return r.API.UpdateLink(ctx, id, l)
}

func (r LinkResource) Delete(ctx context.Context, id int64) error {
	return r.API.DeleteLink(ctx, id)
}

type ExperienceResource struct{ API *client.Client }

func (r ExperienceResource) List(ctx context.Context) ([]experience.Experience, error) {
	l, err := r.API.Experience(ctx)
	return l.Items, err
}

func (r ExperienceResource) Create(ctx context.Context, e experience.Experience) (experience.Experience, error) {
	return r.API.CreateExperience(ctx, e)
}

func (r ExperienceResource) Update(ctx context.Context, id int64, e experience.Experience) (experience.Experience, error) {
	return r.API.UpdateExperience(ctx, id, e)
}

func (r ExperienceResource) Delete(ctx context.Context, id int64) error {
	return r.API.DeleteExperience(ctx, id)
}

type SkillResource struct{ API *client.Client }

func (r SkillResource) List(ctx context.Context) ([]skill.Group, error) {
	l, err := r.API.Skills(ctx)
	return l.Items, err
}

func (r SkillResource) Create(ctx context.Context, g skill.Group) (skill.Group, error) {
	return r.API.CreateSkill(ctx, g)
}

func (r SkillResource) Update(ctx context.Context, id int64, g skill.Group) (skill.Group, error) {
	return r.API.UpdateSkill(ctx, id, g)
}

func (r SkillResource) Delete(ctx context.Context, id int64) error {
	return r.API.DeleteSkill(ctx, id)
}

// BlogResource works on the author's own posts, drafts included.
type BlogResource struct{ API *client.Client }

func (r BlogResource) List(ctx context.Context) ([]blog.Post, error) {
	f := client.Filters{Page: 1, PageSize: blog.MaxPageSize}
	var out []blog.Post
	for {
		l, err := r.API.MyBlogs(ctx, f)
		if err != nil {
			return nil, err
		}
		out = append(out, l.Items...)
		if f.Page >= l.TotalPages {
			return out, nil
		}
		f.Page++
	}
}

func (r BlogResource) Create(ctx context.Context, p blog.Post) (blog.Post, error) {
	return r.API.CreateBlog(ctx, p)
}

// Update sends the editable fields. The slug goes along unchanged so the
// server can reject a rename.
func (r BlogResource) Update(ctx context.Context, id int64, p blog.Post) (blog.Post, error) {
	tags := p.Tags
	patch := blog.Patch{
		Title:         &p.Title,
		Slug:          &p.Slug,
		Content:       &p.Content,
		Excerpt:       &p.Excerpt,
		Tags:          &tags,
		IsFeatured:    &p.IsFeatured,
		FeaturedImage: &p.FeaturedImage,
	}
	if p.Status != "" {
		patch.Status = &p.Status
	}
	if p.ReadTime > 0 {
		patch.ReadTime = &p.ReadTime
	}
	return r.API.UpdateBlog(ctx, id, patch)
}

func (r BlogResource) Delete(ctx context.Context, id int64) error {
	return r.API.DeleteBlog(ctx, id)
}

// SetBlogTitle updates the title of a new post and keeps the slug in step
// with it until the slug has been typed by hand.
func SetBlogTitle(e *Editor[blog.Post], title string) error {
	creating := e.Mode() == Creating
	return e.Edit(func(p *blog.Post) {
		if creating && (p.Slug == "" || p.Slug == text.Slugify(p.Title)) {
			p.Slug = text.Slugify(title)
		}
		p.Title = title
	})
}
