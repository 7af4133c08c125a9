package config

import (
	"Agri-Assist-Backend/domain"
	"Agri-Assist-Backend/internal/api/handlers"
	"Agri-Assist-Backend/internal/api/presenters"
	"Agri-Assist-Backend/internal/api/routes"
	"Agri-Assist-Backend/internal/metrics"
	"Agri-Assist-Backend/internal/middleware"
	"Agri-Assist-Backend/internal/utils"
	"Agri-Assist-Backend/pkg/gemini"
	"Agri-Assist-Backend/pkg/scan"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Dependencies are the process-wide handles built once in main.
type Dependencies struct {
	Logger         *zap.Logger
	Completer      gemini.Completer
	ScanRepository scan.ScanRepository
	Registry       *prometheus.Registry
	AccessLog      io.Writer
}

func NewApp(deps Dependencies) (*fiber.App, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if deps.Completer == nil {
		return nil, errors.New("completer is required")
	}
	if deps.ScanRepository == nil {
		return nil, errors.New("scan repository is required")
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(deps.Logger),
	})
	middlewares := middleware.NewMiddleware(deps.Logger)
	validator := utils.NewValidator()
	appMetrics := metrics.New(deps.Registry)

	app.Use(middlewares.RecoverMiddleware())
	if deps.AccessLog != nil {
		app.Use(middlewares.AccessLogMiddleware(deps.AccessLog))
	}

	// Service
	geminiService := gemini.NewGeminiService(deps.Completer, deps.Logger, appMetrics)
	scanService := scan.NewScanService(deps.ScanRepository, deps.Logger, appMetrics)

	// Handler
	geminiHandler := handlers.NewGeminiHandler(geminiService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		GeminiHandler: geminiHandler,
		ScanHandler:   scanHandler,
		Middleware:    middlewares,
		Gatherer:      deps.Registry,
	}
	routesConfig.Setup()
	return app, nil
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := domain.MessageFailedProcessRequest

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return presenters.ErrorResponse(c, code, message)
	}
}
