// @title         portfolio API
// @version       1.0
// @description   Бэкенд персонального портфолио: профиль, проекты, навыки, соцсети, опыт работы, блог и форма обратной связи.
// @BasePath      /api
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description Токен администратора. Поддерживаются форматы: "Token <JWT>", "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/portfolio/api/http"
	_ "github.com/artem13815/portfolio/docs"
	"github.com/artem13815/portfolio/pkg/config"
	"github.com/artem13815/portfolio/pkg/health"
	"github.com/artem13815/portfolio/pkg/health/checkers"
	"github.com/artem13815/portfolio/pkg/mail/emailjs"
	"github.com/artem13815/portfolio/pkg/media"
	"github.com/artem13815/portfolio/pkg/repository/memory"
	pgrepo "github.com/artem13815/portfolio/pkg/repository/postgres"
	"github.com/artem13815/portfolio/pkg/storage/postgres"
	"github.com/artem13815/portfolio/pkg/storage/redis"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	ctx := context.Background()

	images := media.NewStore(cfg.UploadDir, cfg.PublicBaseURL, cfg.MaxUploadBytes())
	checks := []health.Checker{checkers.NewUploadDirChecker(images)}

	var backend http.Backend
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		users := pgrepo.NewUserRepository(pool)
		skills := pgrepo.NewSkillRepository(pool)
		backend = http.Backend{
			Users:       users,
			Profiles:    users,
			Links:       pgrepo.NewLinkRepository(pool),
			Projects:    pgrepo.NewProjectRepository(pool),
			Skills:      skills,
			Categories:  skills,
			Experiences: pgrepo.NewExperienceRepository(pool),
			Blogs:       pgrepo.NewBlogRepository(pool),
		}
		checks = append(checks, checkers.NewPostgresChecker(pool))
	} else {
		log.Printf("DATABASE_URL is empty: using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		backend = http.Backend{
			Users:       store.Users,
			Profiles:    store.Users,
			Links:       store.Links,
			Projects:    store.Projects,
			Skills:      store.Skills,
			Categories:  store.Skills,
			Experiences: store.Experiences,
			Blogs:       store.Blogs,
		}
	}

	if cfg.RedisURL != "" {
		client, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer client.Close()
		backend.Revoker = redis.NewRevoker(client)
		checks = append(checks, checkers.NewRedisChecker(client))
	} else {
		backend.Revoker = memory.NewRevoker()
	}

	backend.Images = images
	backend.Mail = emailjs.New(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSPublicKey, cfg.EmailJSBaseURL)
	backend.Readiness = health.NewService(checks...)

	srv := http.New(backend, http.Settings{
		JWTSecret:     cfg.JWTSecret,
		JWTIssuer:     cfg.JWTIssuer,
		JWTTTL:        time.Duration(cfg.JWTTTLMinutes) * time.Minute,
		AdminUsername: cfg.AdminUsername,
		OwnerName:     cfg.OwnerName,
		UploadDir:     cfg.UploadDir,
		BodyLimit:     int(cfg.MaxUploadBytes()) + 1<<20,
		CORSOrigins:   cfg.CORSOrigins,
		AccessLog:     true,
	})

	if cfg.AdminPassword != "" {
		admin, err := srv.Auth.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail)
		if err != nil {
			log.Fatalf("ensure admin: %v", err)
		}
		log.Printf("admin account %q has id %d", admin.Username, admin.ID)
	} else {
		log.Printf("ADMIN_PASSWORD is empty: admin account is not created")
	}

	// Swagger UI
	srv.App.Get("/swagger/*", swagger.HandlerDefault)
	srv.App.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "route not found"})
	})

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := srv.App.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
