package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/artem13815/portfolio/api/http/handlers"
	"github.com/artem13815/portfolio/pkg/auth"
	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/contact"
	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/health"
	"github.com/artem13815/portfolio/pkg/mail"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/security/jwt"
	"github.com/artem13815/portfolio/pkg/skill"
)

// Backend is the storage side of the service.
type Backend struct {
	Users       auth.UserRepository
	Profiles    profile.Repository
	Links       profile.LinkRepository
	Projects    project.Repository
	Skills      skill.Repository
	Categories  skill.CategoryRepository
	Experiences experience.Repository
	Blogs       blog.Repository
	Revoker     auth.Revoker
	Images      handlers.ImageStore
	Mail        mail.Sender
	Readiness   health.ReadinessUseCase
}

type Settings struct {
	JWTSecret     string
	JWTIssuer     string
	JWTTTL        time.Duration
	AdminUsername string
	OwnerName     string
	UploadDir     string
	BodyLimit     int
	CORSOrigins   string
	AccessLog     bool
}

// Server is the assembled Fiber app plus the auth use case main needs to
// seed the admin account.
type Server struct {
	App  *fiber.App
	Auth auth.AuthUseCase
}

// New wires use cases and handlers over b and mounts every route.
func New(b Backend, s Settings) *Server {
	gen := jwt.NewGenerator(s.JWTSecret, s.JWTIssuer, s.JWTTTL)
	verifier := jwt.NewVerifier(s.JWTSecret, s.JWTIssuer, b.Revoker)
	authUC := auth.NewAuthService(b.Users, gen, b.Revoker)

	profileUC := profile.NewService(profile.Deps{
		Profiles:    b.Profiles,
		Links:       b.Links,
		Projects:    b.Projects,
		Skills:      b.Skills,
		Experiences: b.Experiences,
	})
	sender := b.Mail
	if sender == nil {
		sender = mail.Disabled
	}
	contactUC := contact.NewService(sender, ownerName(b, s))

	readiness := b.Readiness
	if readiness == nil {
		readiness = health.NewService()
	}

	app := newApp(s)
	Register(app, Handlers{
		Auth:         handlers.NewAuthHandler(authUC),
		Health:       handlers.NewHealthHandler(readiness),
		Profile:      handlers.NewProfileHandler(profileUC, b.Images),
		Projects:     handlers.NewProjectHandler(project.NewService(b.Projects)),
		Skills:       handlers.NewSkillHandler(skill.NewService(b.Skills, b.Categories)),
		Experience:   handlers.NewExperienceHandler(experience.NewService(b.Experiences)),
		Blogs:        handlers.NewBlogHandler(blog.NewService(b.Blogs), b.Images),
		Contact:      handlers.NewContactHandler(contactUC),
		RequireAuth:  jwt.NewAuthMiddleware(verifier),
		OptionalAuth: jwt.NewOptionalAuthMiddleware(verifier),
	})
	if s.UploadDir != "" {
		app.Static("/uploads", s.UploadDir)
	}
	return &Server{App: app, Auth: authUC}
}

func newApp(s Settings) *fiber.App {
	cfg := fiber.Config{AppName: "portfolio"}
	if s.BodyLimit > 0 {
		cfg.BodyLimit = s.BodyLimit
	}
	app := fiber.New(cfg)
	app.Use(recover.New())
	if s.AccessLog {
		app.Use(logger.New())
	}
	origins := strings.TrimSpace(s.CORSOrigins)
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	return app
}

// ownerName resolves the addressee of contact e-mails: the configured name,
// or the admin's profile name.
func ownerName(b Backend, s Settings) contact.OwnerName {
	return func(ctx context.Context) string {
		if s.OwnerName != "" {
			return s.OwnerName
		}
		u, err := b.Users.GetByUsername(ctx, s.AdminUsername)
		if err != nil {
			return ""
		}
		p, err := b.Profiles.Get(ctx, u.ID)
		if err != nil {
			return ""
		}
		return p.FullName()
	}
}
