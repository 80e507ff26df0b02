package api

import (
	"lifepath/internal/api/handlers"
	"lifepath/pkg/config"
	"lifepath/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Paths      *handlers.PathHandler
	Evaluation *handlers.EvaluationHandler
	Comparison *handlers.ComparisonHandler
}

func SetupRouter(h Handlers, cfg *config.Config, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "lifepath",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(appLogger))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			appLogger.Error("Recovered from panic", zap.Any("panic", e), zap.String("path", c.Path()))
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	app.Get("/health", h.Health.Health)

	api := app.Group("/api/v1", middleware.RateLimit(cfg.RateLimit.Max, cfg.RateLimit.Window, appLogger))

	paths := api.Group("/paths")
	paths.Get("", h.Paths.ListPaths)
	paths.Post("/evaluate", h.Evaluation.EvaluatePaths)
	paths.Post("/compare", h.Comparison.ComparePaths)
	paths.Get("/:id", h.Paths.GetPath)

	return app
}
