package server

import (
	"log"

	"happycust-be/internal/bootstrap"
	"happycust-be/internal/config"
	"happycust-be/internal/pkg/logger"
	"happycust-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container, sysLogger logger.ILogger) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 2 * 1024 * 1024, // submissions are small JSON bodies
	})

	// Dashboard CORS. The /api/public group overrides this with open CORS of
	// its own, and the widget iframe is same-origin with the API.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(sysLogger))

	// Embeddable client assets
	app.Static("/widget", "./public")

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.OAuthController.RegisterRoutes(api)

	c.WidgetController.RegisterRoutes(api)
	c.PublicController.RegisterRoutes(api)

	c.ProjectController.RegisterRoutes(api)
	c.FeedbackController.RegisterRoutes(api)
	c.ReviewController.RegisterRoutes(api)
	c.IssueController.RegisterRoutes(api)
	c.FeatureController.RegisterRoutes(api)
	c.StatsController.RegisterRoutes(api)

	c.NotificationHandler.RegisterRoutes(api)
}
