package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/session"
)

var (
	ErrNotAuthenticated = errors.New("login required")
	ErrUnknownTab       = errors.New("unknown tab")
)

type Tab string

const (
	TabProfile    Tab = "profile"
	TabProjects   Tab = "projects"
	TabSkills     Tab = "skills"
	TabSocial     Tab = "social"
	TabExperience Tab = "experience"
	TabBlog       Tab = "blog"
)

// Tabs in display order.
var Tabs = []Tab{TabProfile, TabProjects, TabSkills, TabSocial, TabExperience, TabBlog}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Workspace is the set of editors of one logged in session.
type Workspace struct {
	Profile    *ProfileForm
	Projects   *Editor[project.Project]
	Skills     *SkillsTab
	Links      *Editor[profile.SocialLink]
	Experience *Editor[experience.Experience]
	Blogs      *Editor[blog.Post]
}

func newWorkspace(api *client.Client) *Workspace {
	return &Workspace{
		Profile:    NewProfileForm(api),
		Projects:   NewEditor(ProjectKind, Resource[project.Project](ProjectResource{API: api})),
		Skills:     NewSkillsTab(SkillResource{API: api}),
		Links:      NewEditor(LinkKind, Resource[profile.SocialLink](LinkResource{API: api})),
		Experience: NewEditor(ExperienceKind, Resource[experience.Experience](ExperienceResource{API: api})),
		Blogs:      NewEditor(BlogKind, Resource[blog.Post](BlogResource{API: api})),
	}
}

func (w *Workspace) close() {
	w.Profile.Close()
	w.Projects.Close()
	w.Skills.Close()
	w.Links.Close()
	w.Experience.Close()
	w.Blogs.Close()
}

// Load refreshes the editor behind tab.
func (w *Workspace) Load(ctx context.Context, tab Tab) error {
	switch tab {
	case TabProfile:
		return w.Profile.Load(ctx)
	case TabProjects:
		return w.Projects.Refresh(ctx)
	case TabSkills:
		return w.Skills.Refresh(ctx)
	case TabSocial:
		return w.Links.Refresh(ctx)
	case TabExperience:
		return w.Experience.Refresh(ctx)
	case TabBlog:
		return w.Blogs.Refresh(ctx)
	}
	return ErrUnknownTab
}

// Shell is the admin console: it owns the session and the editors and
// drops both when the API reports the token as no longer valid.
type Shell struct {
	api  *client.Client
	sess *session.Session

	mu     sync.Mutex
	active Tab
	ws     *Workspace
}

// NewShell wires the client's 401 handler to a local logout. api must read
// its token from sess.
func NewShell(api *client.Client, sess *session.Session) *Shell {
	s := &Shell{api: api, sess: sess, active: TabProfile}
	api.SetUnauthorizedHandler(s.expire)
	if sess.Authenticated() {
		s.ws = newWorkspace(api)
	}
	return s
}

func (s *Shell) Authenticated() bool { return s.sess.Authenticated() }

// Login exchanges credentials for a token and persists it.
func (s *Shell) Login(ctx context.Context, username, password string) (client.Session, error) {
	res, err := s.api.Login(ctx, username, password)
	if err != nil {
		return client.Session{}, err
	}
	if err := s.sess.Save(res.Token); err != nil {
		return client.Session{}, fmt.Errorf("save session: %w", err)
	}
	s.mu.Lock()
	if s.ws != nil {
		s.ws.close()
	}
	s.ws = newWorkspace(s.api)
	s.active = TabProfile
	s.mu.Unlock()
	return res, nil
}

// Logout revokes the token on the server when possible and always clears
// the local session.
func (s *Shell) Logout(ctx context.Context) error {
	if s.sess.Authenticated() {
		if err := s.api.Logout(ctx); err != nil {
			log.Printf("logout: %v", err)
		}
	}
	return s.drop()
}

// expire is the 401 handler; the token is already useless, so the server
// is not asked to revoke it.
func (s *Shell) expire() {
	if err := s.drop(); err != nil {
		log.Printf("clear session: %v", err)
	}
}

func (s *Shell) drop() error {
	s.mu.Lock()
	if s.ws != nil {
		s.ws.close()
		s.ws = nil
	}
	s.active = TabProfile
	s.mu.Unlock()
	return s.sess.Clear()
}

// Select switches the active tab.
func (s *Shell) Select(tab Tab) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = tab
	return nil
}

func (s *Shell) Active() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Workspace returns the editors of the current session.
func (s *Shell) Workspace() (*Workspace, error) {
	if !s.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ws == nil {
		s.ws = newWorkspace(s.api)
	}
	return s.ws, nil
}
