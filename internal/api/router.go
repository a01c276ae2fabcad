package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/marketpulse/stock-insights/internal/api/handler"
	"github.com/marketpulse/stock-insights/internal/api/middleware"
	"github.com/marketpulse/stock-insights/internal/core/domain"
	"github.com/marketpulse/stock-insights/internal/core/service"
	"github.com/marketpulse/stock-insights/internal/infrastructure/config"
	"github.com/marketpulse/stock-insights/internal/infrastructure/db/postgres"
	"github.com/marketpulse/stock-insights/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("stockinsights"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authRepo := postgres.NewAuthRepository(pool)
	authService := service.NewAuthService(authRepo, tokenService)
	authHandler := handler.NewAuthHandler(authService)

	stockRepo := postgres.NewStockRepository(pool)
	stockService := service.NewStockService(stockRepo)
	chartHandler := handler.NewChartHandler(stockService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Chart routes (bearer token + per-route role allow-list) ---
	charts := e.Group("/api", middleware.Auth(tokenService))
	charts.GET("/line-chart", chartHandler.PriceSeries, middleware.RBAC(domain.RoleLineViewer))
	charts.GET("/bar-chart", chartHandler.PriceSeries, middleware.RBAC(domain.RoleBarViewer))
	charts.GET("/pie-chart", chartHandler.VolumeBreakdown, middleware.RBAC(domain.RolePieViewer))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
