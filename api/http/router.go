package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Profile    *handlers.ProfileHandler
	Projects   *handlers.ProjectHandler
	Skills     *handlers.SkillHandler
	Experience *handlers.ExperienceHandler
	Blogs      *handlers.BlogHandler
	Contact    *handlers.ContactHandler

	// RequireAuth rejects requests without a valid token; OptionalAuth only
	// identifies the caller when a token is present.
	RequireAuth  fiber.Handler
	OptionalAuth fiber.Handler
}

// Register wires all HTTP routes onto given Fiber app. Paths answer with
// and without the trailing slash.
func Register(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", h.Health.Health)
	api.Get("/ready", h.Health.Ready)

	a := api.Group("/auth")
	a.Post("/login", h.Auth.Login)
	a.Post("/logout", h.RequireAuth, h.Auth.Logout)

	owner := []fiber.Handler{h.RequireAuth, handlers.RequireOwner}

	api.Patch("/users/profile", h.RequireAuth, h.Profile.Update)
	u := api.Group("/users/:userId")
	u.Get("/profile", h.OptionalAuth, h.Profile.Get)
	u.Post("/photo", append(owner, h.Profile.UploadPhoto)...)

	u.Get("/projects", h.OptionalAuth, h.Projects.List)
	u.Post("/projects", append(owner, h.Projects.Create)...)
	u.Put("/projects/:id", append(owner, h.Projects.Update)...)
	u.Delete("/projects/:id", append(owner, h.Projects.Delete)...)

	u.Get("/skills", h.Skills.List)
	u.Post("/skills", append(owner, h.Skills.Create)...)
	u.Put("/skills/:id", append(owner, h.Skills.Update)...)
	u.Delete("/skills/:id", append(owner, h.Skills.Delete)...)

	u.Get("/social-links", h.OptionalAuth, h.Profile.Links)
	u.Post("/social-links", append(owner, h.Profile.CreateLink)...)
	u.Put("/social-links/:id", append(owner, h.Profile.UpdateLink)...)
	u.Delete("/social-links/:id", append(owner, h.Profile.DeleteLink)...)

	u.Get("/work-experience", h.Experience.List)
	u.Post("/work-experience", append(owner, h.Experience.Create)...)
	u.Put("/work-experience/:id", append(owner, h.Experience.Update)...)
	u.Delete("/work-experience/:id", append(owner, h.Experience.Delete)...)

	api.Get("/skill-categories", h.Skills.Categories)
	api.Post("/skill-categories", h.RequireAuth, h.Skills.CreateCategory)

	b := api.Group("/blogs")
	b.Get("/", h.Blogs.List)
	b.Get("/featured", h.Blogs.Featured)
	b.Post("/create", h.RequireAuth, h.Blogs.Create)
	b.Post("/upload-image", h.RequireAuth, h.Blogs.UploadImage)
	b.Patch("/:id/update", h.RequireAuth, h.Blogs.Update)
	b.Delete("/:id/delete", h.RequireAuth, h.Blogs.Delete)
	b.Get("/:slug", h.Blogs.Detail)
	api.Get("/user/blogs", h.RequireAuth, h.Blogs.Mine)

	api.Post("/contact", h.Contact.Send)
}
