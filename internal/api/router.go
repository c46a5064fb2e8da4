package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cimco/maintenance-system/internal/api/handler"
	"github.com/cimco/maintenance-system/internal/api/middleware"
	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
	"github.com/cimco/maintenance-system/internal/core/session"
	"github.com/cimco/maintenance-system/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs. Services and the log
// dispatcher are constructed in main so their lifecycles (worker goroutines,
// connections) are owned by the composition root, not the router.
type Dependencies struct {
	Logger   zerolog.Logger
	Sessions *session.Store
	DB       *mongo.Database
	Redis    *redis.Client

	AuthService      ports.AuthService
	EquipmentService ports.EquipmentService
	TaskService      ports.TaskService
	PartService      ports.PartService
	LogService       ports.LogService
	AnalysisService  ports.AnalysisService
	LogDispatcher    handler.LogDispatcher
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

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	equipmentHandler := handler.NewEquipmentHandler(deps.EquipmentService)
	taskHandler := handler.NewTaskHandler(deps.TaskService)
	partHandler := handler.NewPartHandler(deps.PartService)
	logHandler := handler.NewLogHandler(deps.LogDispatcher, deps.LogService)
	analysisHandler := handler.NewAnalysisHandler(deps.AnalysisService)

	authn := middleware.Auth(deps.Sessions)
	worker := middleware.RequireRole(deps.Sessions, domain.RoleWorker)
	admin := middleware.RequireRole(deps.Sessions, domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Session routes (any valid session) ---
	auth := e.Group("/auth", authn)
	auth.GET("/me", authHandler.Me)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/register", authHandler.Register, admin)

	// --- Worker routes (admin sessions also pass) ---
	v1 := e.Group("/v1", authn, worker)

	v1.GET("/equipment", equipmentHandler.List)
	v1.GET("/equipment/stats", equipmentHandler.Stats)
	v1.PATCH("/equipment/:id/status", equipmentHandler.UpdateStatus)
	v1.POST("/equipment", equipmentHandler.Create, admin)
	v1.DELETE("/equipment/:id", equipmentHandler.Delete, admin)

	v1.GET("/tasks", taskHandler.List)
	v1.POST("/tasks", taskHandler.Create)
	v1.POST("/tasks/:id/toggle", taskHandler.Toggle)
	v1.DELETE("/tasks/:id", taskHandler.Delete, admin)

	v1.GET("/parts", partHandler.List)
	v1.GET("/parts/low-stock", partHandler.LowStock)
	v1.POST("/parts", partHandler.Create)
	v1.PATCH("/parts/:id/quantity", partHandler.AdjustQuantity)
	v1.PATCH("/parts/:id/location", partHandler.UpdateLocation)
	v1.DELETE("/parts/:id", partHandler.Delete, admin)

	v1.GET("/orders/incoming", partHandler.ListOrders)
	v1.POST("/orders/:id/receive", partHandler.ReceiveOrder)

	v1.POST("/logs", logHandler.Receive)
	v1.POST("/logs/batch", logHandler.ReceiveBatch)
	v1.GET("/logs/:equipment_id", logHandler.ListByEquipment)

	v1.POST("/analysis", analysisHandler.AnalyzeDescription)
	v1.POST("/analysis/photo", analysisHandler.AnalyzePhoto)

	return e
}
