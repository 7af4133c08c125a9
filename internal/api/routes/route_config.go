package routes

import (
	"Agri-Assist-Backend/internal/api/handlers"
	"Agri-Assist-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App           *fiber.App
	GeminiHandler handlers.GeminiHandler
	ScanHandler   handlers.ScanHandler
	Middleware    middleware.Middleware
	Gatherer      prometheus.Gatherer
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Advisory()
	c.Scans()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	if c.Gatherer != nil {
		c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(c.Gatherer, promhttp.HandlerOpts{})))
	}
}

func (c *Config) Advisory() {
	c.App.Post("/gemini", c.GeminiHandler.Ask)
}

func (c *Config) Scans() {
	c.App.Post("/saveScan", c.ScanHandler.SaveScan)
	c.App.Get("/getFarms", c.ScanHandler.GetFarms)
}
