// Package display composes the public portfolio page from API data.
package display

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/paging"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/text"
)

// ErrNotFound is returned by BlogDetail for an unknown slug.
var ErrNotFound = errors.New("post not found")

const (
	// TopPostsLimit and TopPostsOrdering select the posts on the home page.
	TopPostsLimit    = 3
	TopPostsOrdering = "-views,-created_at"
)

type State int

const (
	Loading State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "loading"
}

// Source is the part of the API client the page reads from.
type Source interface {
	Profile(ctx context.Context, authAware bool) (profile.Data, error)
	Blogs(ctx context.Context, f client.Filters) (client.List[blog.Post], error)
	BlogBySlug(ctx context.Context, slug string) (blog.Post, error)
}

type Hero struct {
	Name      string
	Bio       string
	Media     string
	MediaKind profile.MediaKind
}

type SkillSection struct {
	Category string
	Skills   []string
}

type Job struct {
	experience.Experience
	// End is the end date label, "Present" for an open-ended job.
	End    string
	Period string
}

// Page holds every section of the home page.
type Page struct {
	Hero       Hero
	Skills     []SkillSection
	Projects   []project.Project
	Experience []Job
	Blog       []blog.Post
	Contact    []profile.SocialLink
}

type Composer struct {
	src Source

	mu       sync.Mutex
	state    State
	err      error
	page     Page
	carousel *paging.Carousel
}

// NewComposer prepares a page for a viewport of width pixels.
func NewComposer(src Source, width int) *Composer {
	return &Composer{src: src, carousel: paging.NewCarousel(width, 0)}
}

// Load fetches the profile and the top posts concurrently. The page is
// Ready once the profile arrives; a blog failure only empties that section.
func (c *Composer) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state, c.err = Loading, nil
	c.mu.Unlock()

	var (
		wg      sync.WaitGroup
		posts   client.List[blog.Post]
		postErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		posts, postErr = c.src.Blogs(ctx, client.Filters{Limit: TopPostsLimit, Ordering: TopPostsOrdering})
	}()
	data, err := c.src.Profile(ctx, false)
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state, c.err, c.page = Failed, err, Page{}
		return err
	}
	page := Compose(data)
	if postErr == nil {
		page.Blog = posts.Items
		if len(page.Blog) > TopPostsLimit {
			page.Blog = page.Blog[:TopPostsLimit]
		}
	}
	c.page, c.state = page, Ready
	c.carousel.SetTotal(len(page.Projects))
	return nil
}

// Compose builds all sections except the blog from the profile aggregate.
func Compose(d profile.Data) Page {
	p := Page{
		Hero: Hero{
			Name:      d.User.FullName(),
			Bio:       d.User.Bio,
			Media:     d.User.ProfilePhoto,
			MediaKind: profile.KindOf(d.User.ProfilePhoto),
		},
		Skills:     []SkillSection{},
		Projects:   paging.Projects(d.Projects),
		Experience: []Job{},
		Blog:       []blog.Post{},
		Contact:    []profile.SocialLink{},
	}
	if p.Hero.Name == "" {
		p.Hero.Name = d.User.Username
	}
	for _, g := range d.Skills {
		names := text.NormalizeList(g.Skills)
		if len(names) == 0 {
			continue
		}
		p.Skills = append(p.Skills, SkillSection{Category: g.Category.Name, Skills: names})
	}
	for _, e := range d.WorkExperience {
		j := Job{Experience: e, End: e.EndLabel(), Period: e.Period()}
		p.Experience = append(p.Experience, j)
	}
	for _, l := range d.SocialLinks {
		if l.IsActive {
			p.Contact = append(p.Contact, l)
		}
	}
	return p
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err is the load failure text source when State is Failed.
func (c *Composer) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Composer) Page() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Composer) Carousel() *paging.Carousel { return c.carousel }

// VisibleProjects is the current carousel window of projects.
func (c *Composer) VisibleProjects() []project.Project {
	return paging.Window(c.carousel, c.Page().Projects)
}

// BlogDetail loads a published post by slug.
func (c *Composer) BlogDetail(ctx context.Context, slug string) (blog.Post, error) {
	p, err := c.src.BlogBySlug(ctx, slug)
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
		return blog.Post{}, ErrNotFound
	}
	return p, err
}
