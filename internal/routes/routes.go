package routes

import (
	"time"

	"github.com/cognigames/cogni-backend/internal/config"
	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/handlers"
	"github.com/cognigames/cogni-backend/internal/metrics"
	"github.com/cognigames/cogni-backend/internal/middleware"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler
	User   *handlers.UserHandler
	Game   *handlers.GameHandler
	Score  *handlers.ScoreHandler
}

// Setup registers every route. storage backs the rate limiters and may be
// nil, in which case limits are kept in process memory.
func Setup(app *fiber.App, cfg *config.Config, users *services.UserService, h Handlers, storage fiber.Storage) {
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	api.Use(newLimiter("api", cfg.RateLimitPerMinute, storage))

	api.Get("/", h.Health.Root)
	api.Get("/health", h.Health.Check)

	// Stricter limit on credential endpoints
	auth := api.Group("/auth")
	auth.Use(newLimiter("auth", 10, storage))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	protected := middleware.JWTProtected(cfg)

	auth.Post("/logout", protected, h.Auth.Logout)
	api.Get("/me", protected, h.Auth.Me)

	api.Get("/users/:id", protected, h.User.Get)
	api.Get("/users/:id/scores", protected, h.User.Scores)

	api.Get("/games", h.Game.List)
	api.Get("/games/:id/scores", h.Game.Scores)
	api.Get("/games/:id/below-average", protected, h.Game.BelowAverage)

	api.Post("/scores/:game_type", protected, h.Score.Submit)

	admin := api.Group("/admin",
		middleware.JWTProtectedUnless(cfg, middleware.HasAdminToken(cfg)),
		middleware.AdminRequired(users, cfg),
	)
	admin.Get("/users", h.User.List)
	admin.Post("/games", h.Game.Create)
}

// newLimiter counts requests per client IP under its own key prefix, so
// limiters sharing one storage keep separate counters.
func newLimiter(prefix string, perMinute int, storage fiber.Storage) fiber.Handler {
	if perMinute <= 0 {
		perMinute = 60
	}
	return limiter.New(limiter.Config{
		Max:               perMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return prefix + ":" + c.IP() },
		Storage:           storage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: true, Message: "Too many requests",
			})
		},
	})
}
