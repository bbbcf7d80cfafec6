package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/mertcakir/gameshelf-backend/internal/config"
	"github.com/mertcakir/gameshelf-backend/internal/handlers"
	"github.com/mertcakir/gameshelf-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	platformHandler *handlers.PlatformHandler,
	gameHandler *handlers.GameHandler,
	importHandler *handlers.ImportHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Credential endpoints get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/users/signup", authLimiter, userHandler.Signup)
	api.Post("/auth/login", authLimiter, authHandler.Login)

	// JWT middleware is applied per route so it never leaks onto the
	// public signup/login/health paths sharing these prefixes.
	protected := middleware.JWTProtected(cfg)
	anyRole := middleware.RequireRoles()
	adminOnly := middleware.RequireRoles("admin")

	api.Get("/users/me", protected, anyRole, userHandler.Me)
	api.Get("/users/:id", protected, anyRole, userHandler.FindOne)
	api.Patch("/users/:id", protected, anyRole, userHandler.Update)

	api.Post("/platforms", protected, adminOnly, platformHandler.Create)
	api.Get("/platforms", protected, anyRole, platformHandler.List)
	api.Get("/platforms/:id", protected, anyRole, platformHandler.FindOne)
	api.Patch("/platforms/:id", protected, adminOnly, platformHandler.Update)

	// Fixed segments before the :id wildcard.
	api.Post("/games/import", protected, adminOnly, importHandler.ImportGames)
	api.Get("/games/search", protected, anyRole, gameHandler.Search)
	api.Get("/games/pick", protected, anyRole, gameHandler.Pick)
	api.Post("/games", protected, anyRole, gameHandler.Create)
	api.Get("/games", protected, anyRole, gameHandler.FindAll)
	api.Get("/games/:id", protected, anyRole, gameHandler.FindOne)
	api.Patch("/games/:id", protected, anyRole, gameHandler.Update)
	api.Delete("/games/:id", protected, adminOnly, gameHandler.Remove)
}
