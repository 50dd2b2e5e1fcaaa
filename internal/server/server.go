package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/spec-logic/speclogic-api/internal/catalog"
	"github.com/spec-logic/speclogic-api/internal/config"
	"github.com/spec-logic/speclogic-api/internal/store"
)

// New assembles the Fiber app with all routes and middleware.
func New(cfg *config.Config, cat *catalog.Catalog, builds store.BuildStore) *fiber.App {
	app := fiber.New()
	app.Use(helmet.New())
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${pid} | ${time} | ${latency} | [${ip}]:${port} | ${status} - ${method} ${path}\n",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
	}))

	h := &handlers{catalog: cat, builds: builds}

	api := app.Group("/api")

	// Engine endpoints: thin wrappers around pkg/compat.
	api.Post("/builds/validate", h.validateBuild)
	api.Post("/builds/power", h.powerAnalysis)
	api.Post("/builds/filters", h.activeFilters)
	api.Post("/builds/export", h.exportBuild)
	api.Post("/components/check", h.checkComponent)

	// Catalog search narrowed by derived filters.
	api.Post("/components/search", h.searchComponents)

	// Saved builds.
	api.Post("/builds", h.saveBuild)
	api.Get("/builds/:id", h.getBuild)
	api.Delete("/builds/:id", h.deleteBuild)

	return app
}
