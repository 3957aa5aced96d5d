package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/MabsIPCA/manalynxAPI-sub001/docs"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/api/handler"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/api/middleware"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/service"
	mongodb "github.com/MabsIPCA/manalynxAPI-sub001/internal/infrastructure/db/mongo"
	redisdb "github.com/MabsIPCA/manalynxAPI-sub001/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs to assemble the API.
type Dependencies struct {
	Mongo  *mongo.Database
	Redis  *redis.Client
	Tokens *service.TokenService
	Audit  ports.AuditSink
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Every route is declared together with its AuthSpec so the full access
// table lives in one place; anything not explicitly anonymous is protected.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("manalynx"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	policyRepo := mongodb.NewPolicyRepository(deps.Mongo)
	categoryRepo := mongodb.NewVehicleCategoryRepository(deps.Mongo)
	diseaseRepo := mongodb.NewDiseaseRepository(deps.Mongo)
	teamRepo := mongodb.NewTeamRepository(deps.Mongo)
	auditStore := redisdb.NewAuditStore(deps.Redis)

	authService := service.NewAuthService(userRepo, deps.Tokens, deps.Audit, deps.Logger)
	policyService := service.NewPolicyService(policyRepo, deps.Logger)
	catalogService := service.NewCatalogService(categoryRepo, diseaseRepo, deps.Logger)
	teamService := service.NewTeamService(teamRepo, userRepo, deps.Logger)
	userService := service.NewUserService(userRepo, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	policyHandler := handler.NewPolicyHandler(policyService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	teamHandler := handler.NewTeamHandler(teamService)
	userHandler := handler.NewUserHandler(userService, authService)
	auditHandler := handler.NewAuditHandler(auditStore)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	guard := middleware.NewGuard(deps.Tokens, deps.Audit, deps.Logger)

	// Allow-sets used below. Flat sets: no role implies another.
	var (
		anyAuthenticated = middleware.RequireAuthenticated()
		staff            = middleware.RequireRoles(domain.RoleAdmin, domain.RoleGestor, domain.RoleAgente)
		managers         = middleware.RequireRoles(domain.RoleAdmin, domain.RoleGestor)
		admins           = middleware.RequireRoles(domain.RoleAdmin)
		anonymous        = middleware.AllowAnonymous()
	)

	// --- Auth (anonymous by explicit escape) ---
	e.POST("/auth/register", authHandler.Register, guard.Require(anonymous))
	e.POST("/auth/login", authHandler.Login, guard.Require(anonymous))

	// --- Policies ---
	e.GET("/policies", policyHandler.List, guard.Require(anyAuthenticated))
	e.GET("/policies/:id", policyHandler.Get, guard.Require(anyAuthenticated))
	e.POST("/policies", policyHandler.Create, guard.Require(staff))
	e.PATCH("/policies/:id/status", policyHandler.UpdateStatus, guard.Require(staff))
	e.DELETE("/policies/:id", policyHandler.Delete, guard.Require(managers))
	e.POST("/policies/:id/coverages", policyHandler.AddCoverage, guard.Require(staff))
	e.DELETE("/policies/:id/coverages/:coverage_id", policyHandler.RemoveCoverage, guard.Require(staff))

	// --- Catalog: vehicle categories ---
	e.GET("/vehicle-categories", catalogHandler.ListCategories, guard.Require(anyAuthenticated))
	e.GET("/vehicle-categories/:id", catalogHandler.GetCategory, guard.Require(anyAuthenticated))
	e.POST("/vehicle-categories", catalogHandler.CreateCategory, guard.Require(managers))
	e.PUT("/vehicle-categories/:id", catalogHandler.UpdateCategory, guard.Require(managers))
	e.DELETE("/vehicle-categories/:id", catalogHandler.DeleteCategory, guard.Require(managers))

	// --- Catalog: diseases ---
	e.GET("/diseases", catalogHandler.ListDiseases, guard.Require(anyAuthenticated))
	e.GET("/diseases/:id", catalogHandler.GetDisease, guard.Require(anyAuthenticated))
	e.POST("/diseases", catalogHandler.CreateDisease, guard.Require(managers))
	e.PUT("/diseases/:id", catalogHandler.UpdateDisease, guard.Require(managers))
	e.DELETE("/diseases/:id", catalogHandler.DeleteDisease, guard.Require(managers))

	// --- Teams ---
	e.GET("/teams", teamHandler.List, guard.Require(managers))
	e.GET("/teams/:id", teamHandler.Get, guard.Require(managers))
	e.POST("/teams", teamHandler.Create, guard.Require(managers))
	e.PUT("/teams/:id", teamHandler.Update, guard.Require(managers))
	e.DELETE("/teams/:id", teamHandler.Delete, guard.Require(managers))

	// --- Users (admin only) ---
	e.GET("/users", userHandler.List, guard.Require(admins))
	e.GET("/users/:id", userHandler.Get, guard.Require(admins))
	e.POST("/users", userHandler.Create, guard.Require(admins))
	e.PATCH("/users/:id/role", userHandler.UpdateRole, guard.Require(admins))
	e.DELETE("/users/:id", userHandler.Delete, guard.Require(admins))

	// --- Audit trail (admin only) ---
	e.GET("/audit", auditHandler.Recent, guard.Require(admins))

	// --- Operational endpoints (anonymous by explicit escape) ---
	e.GET("/health", healthHandler.Liveness, guard.Require(anonymous))            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness, guard.Require(anonymous)) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler(), guard.Require(anonymous))
	e.GET("/swagger/*", echoswagger.WrapHandler, guard.Require(anonymous))

	return e
}
