package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/issuetrack/reporting-system/internal/api/handler"
	"github.com/issuetrack/reporting-system/internal/api/middleware"
	"github.com/issuetrack/reporting-system/internal/core/domain"
	"github.com/issuetrack/reporting-system/internal/core/ports"
	"github.com/issuetrack/reporting-system/internal/session"
)

// Dependencies carries everything the router needs, built by the composition
// root. Mongo and Redis are nil in fallback mode and only feed the readiness
// probe.
type Dependencies struct {
	AuthService   ports.AuthService
	ReportService ports.ReportService
	Suggester     ports.DepartmentSuggester
	Codec         *session.Codec
	Revoker       session.Revoker
	SecureCookies bool
	Mongo         *mongo.Database
	Redis         *redis.Client
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("issuetrack"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Codec, deps.Revoker, deps.SecureCookies)
	reportHandler := handler.NewReportHandler(deps.ReportService)
	suggestHandler := handler.NewSuggestHandler(deps.Suggester)

	sessionMW := middleware.Session(deps.Codec, deps.Revoker)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/admin/login", authHandler.AdminLogin)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Report routes (session required, role-gated) ---
	v1 := e.Group("/v1", sessionMW)
	v1.POST("/reports", reportHandler.Create, middleware.RBAC(domain.RoleEmployee))
	v1.GET("/reports/mine", reportHandler.ListMine, middleware.RBAC(domain.RoleEmployee))
	v1.GET("/reports", reportHandler.ListAll, middleware.RBAC(domain.RoleAdmin))
	v1.POST("/reports/:id/reply", reportHandler.Reply, middleware.RBAC(domain.RoleAdmin))
	v1.POST("/departments/suggest", suggestHandler.Suggest)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)         // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
