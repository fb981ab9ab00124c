package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/limkokwing/luct-reporting/internal/api/handler"
	"github.com/limkokwing/luct-reporting/internal/api/middleware"
	"github.com/limkokwing/luct-reporting/internal/auth"
	"github.com/limkokwing/luct-reporting/internal/core/domain"
	"github.com/limkokwing/luct-reporting/internal/core/service"
	"github.com/limkokwing/luct-reporting/internal/infrastructure/db/redis"
	"github.com/limkokwing/luct-reporting/internal/infrastructure/store"
)

// RouterConfig carries everything the router needs beyond the store.
type RouterConfig struct {
	Tokens     *auth.TokenService
	Store      *store.Store
	Dedup      *redis.DedupChecker // nil disables report idempotency checks
	CORSOrigin string
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("reporting"))

	// --- Dependencies ---
	authService := service.NewAuthService(cfg.Store.Users, cfg.Tokens)
	reportService := service.NewReportService(cfg.Store.Reports)
	catalogService := service.NewCatalogService(cfg.Store.Catalog)

	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService, cfg.Dedup, cfg.Log)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	exportHandler := handler.NewExportHandler()
	healthHandler := handler.NewHealthHandler(cfg.Store)

	authenticate := middleware.Auth(cfg.Tokens, cfg.Store.Users, cfg.Log)

	// --- Public routes ---
	e.GET("/api/health", healthHandler.Health)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Protected routes ---
	api := e.Group("/api", authenticate)

	api.GET("/auth/me", authHandler.Me)
	api.GET("/users/profile", authHandler.Profile)

	api.GET("/courses", catalogHandler.Courses)
	api.POST("/courses", catalogHandler.CreateCourse,
		middleware.RequireRole(domain.RoleProgramLeader))

	api.GET("/classes", catalogHandler.Classes)

	api.GET("/reports", reportHandler.List)
	api.POST("/reports", reportHandler.Create,
		middleware.RequireRole(domain.RoleLecturer))

	api.GET("/ratings", catalogHandler.Ratings)
	api.POST("/ratings", catalogHandler.CreateRating,
		middleware.RequireRole(domain.RoleStudent))

	api.GET("/export/reports/excel", exportHandler.ReportsExcel)

	return e
}
