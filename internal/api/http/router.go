package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jobhub/job-board/internal/api/http/handlers"
	"github.com/jobhub/job-board/internal/auth"
	"github.com/jobhub/job-board/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Users         *handlers.UsersHandler
	Jobs          *handlers.JobsHandler
	Authenticator *auth.Authenticator
}

// ServerConfig bundles the ambient pieces of the fiber app.
type ServerConfig struct {
	AppName        string
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	RequestTimeout time.Duration
}

// NewApp builds a fiber app with middlewares and routes registered.
func NewApp(server ServerConfig, routes RouteConfig) *fiber.App {
	logger := server.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	app := fiber.New(fiber.Config{
		AppName:               server.AppName,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return writeError(c, logger, server.Metrics, err)
		},
	})
	RegisterMiddlewares(app, logger, server.Metrics, server.RequestTimeout)
	RegisterRoutes(app, routes)
	return app
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/logout", cfg.Authenticator.Handle, cfg.Users.Logout)
	authGroup.Get("/me", cfg.Authenticator.Handle, cfg.Users.Me)

	jobs := app.Group("/job")
	jobs.Get("/jobs", cfg.Jobs.ListJobs)
	jobs.Post("", cfg.Authenticator.Handle, cfg.Jobs.CreateJob)
	jobs.Put("/:job_id", cfg.Authenticator.Handle, cfg.Jobs.EditJob)
	jobs.Delete("/:job_id", cfg.Authenticator.Handle, cfg.Jobs.DeleteJob)
}
