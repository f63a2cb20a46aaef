package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/careerforge/resume-assistant/internal/api/docs"
	"github.com/careerforge/resume-assistant/internal/api/handler"
	"github.com/careerforge/resume-assistant/internal/api/middleware"
	"github.com/careerforge/resume-assistant/internal/core/ports"
)

// Deps are the services the HTTP layer is built on.
type Deps struct {
	Log        zerolog.Logger
	Auth       ports.AuthService
	Generation ports.GenerationService
	History    ports.HistoryService
	Jobs       ports.JobService
	Extractor  ports.TextExtractor
	Renderer   ports.DocumentRenderer
	// ContentType maps an export format to its MIME type.
	ContentType func(ports.DocumentFormat) string
	// Pingers are checked by the readiness probe, keyed by dependency name.
	Pingers map[string]handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))

	// HTTP metrics live in a per-router registry; /metrics serves them
	// together with the process-wide service metrics.
	httpMetrics := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "resume",
		Registerer: httpMetrics,
	}))
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{httpMetrics, prometheus.DefaultGatherer},
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth)
	generateHandler := handler.NewGenerateHandler(d.Generation)
	historyHandler := handler.NewHistoryHandler(d.History)
	jobHandler := handler.NewJobHandler(d.Jobs)
	documentHandler := handler.NewDocumentHandler(d.Extractor, d.Renderer, d.ContentType)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Pingers)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	authed := e.Group("", middleware.Auth(d.Auth))
	authed.POST("/generate", generateHandler.Generate)
	authed.GET("/history", historyHandler.List)
	authed.GET("/history/:id", historyHandler.Get)
	authed.POST("/jobs/search", jobHandler.Search)
	authed.POST("/documents/extract", documentHandler.Extract, echomiddleware.BodyLimit("11M"))
	authed.POST("/documents/export", documentHandler.Export)

	return e
}
