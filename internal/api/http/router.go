package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mindconnect/mind-service/internal/api/http/handlers"
	"github.com/mindconnect/mind-service/internal/auth"
	"github.com/mindconnect/mind-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Users       *handlers.UsersHandler
	Therapists  *handlers.TherapistsHandler
	Journals    *handlers.JournalsHandler
	Sessions    *handlers.SessionsHandler
	Motivations *handlers.MotivationsHandler
	// AuthFilter is the per-request token filter. It runs on every route
	// and never rejects by itself; the guards below do.
	AuthFilter *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.AuthFilter.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/register-therapist", cfg.Auth.RegisterTherapist)

	users := api.Group("/users", auth.RequireAuthenticated())
	users.Get("/", auth.RequireRole(domain.RoleAdmin), cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Users.Delete)

	therapists := api.Group("/therapists")
	therapists.Get("/", cfg.Therapists.List)
	therapists.Get("/:id", cfg.Therapists.Get)
	therapists.Put("/:id", auth.RequireTherapist(), cfg.Therapists.Update)
	therapists.Patch("/:id/availability", auth.RequireTherapist(), cfg.Therapists.UpdateAvailability)
	therapists.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Therapists.Delete)

	journals := api.Group("/journals", auth.RequireUser())
	journals.Post("/", cfg.Journals.Create)
	journals.Get("/", cfg.Journals.List)
	journals.Get("/:id", cfg.Journals.Get)
	journals.Put("/:id", cfg.Journals.Update)
	journals.Delete("/:id", cfg.Journals.Delete)

	// Sessions sit under the authentication bypass prefix; no guards here.
	sessions := api.Group("/sessions")
	sessions.Post("/", cfg.Sessions.Book)
	sessions.Get("/", cfg.Sessions.List)
	sessions.Get("/:id", cfg.Sessions.Get)
	sessions.Patch("/:id/status", cfg.Sessions.UpdateStatus)
	sessions.Patch("/:id/notes", cfg.Sessions.UpdateNotes)
	sessions.Delete("/:id", cfg.Sessions.Cancel)

	motivations := api.Group("/motivations")
	motivations.Get("/", cfg.Motivations.List)
	motivations.Get("/daily", cfg.Motivations.Daily)
	motivations.Get("/:id", cfg.Motivations.Get)
	motivations.Post("/", auth.RequireRole(domain.RoleAdmin), cfg.Motivations.Create)
	motivations.Put("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Motivations.Update)
	motivations.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Motivations.Delete)
}
