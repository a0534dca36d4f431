package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
)

// RouterConfig agrupa los handlers y parámetros que el router necesita.
type RouterConfig struct {
	JWTSecret      string
	CommandTimeout time.Duration

	Auth        *AuthHandler
	Consignment *ConsignmentHandler
	Dashboard   *DashboardHandler
	User        *UserHandler
	Warehouse   *WarehouseHandler
}

// SetupRoutes registra todas las rutas de la API. El tracking público
// y el login quedan fuera del middleware de autenticación.
func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	api := app.Group("/api", CommandTimeout(cfg.CommandTimeout))

	// Públicas.
	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)

	api.Get("/consignments/tracking/:code", cfg.Consignment.Track)

	// Autenticadas.
	protected := api.Group("", AuthMiddleware(cfg.JWTSecret))

	protected.Get("/auth/me", cfg.Auth.Me)

	consignments := protected.Group("/consignments")
	consignments.Post("/", cfg.Consignment.Create)
	consignments.Get("/", cfg.Consignment.List)
	consignments.Get("/:id", cfg.Consignment.GetByID)
	consignments.Put("/:id/status", cfg.Consignment.UpdateStatus)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", cfg.Dashboard.Stats)
	dashboard.Get("/consignments-by-status", cfg.Dashboard.ConsignmentsByStatus)
	dashboard.Get("/recent-activities", cfg.Dashboard.RecentActivities)
	dashboard.Get("/performance-metrics", cfg.Dashboard.PerformanceMetrics)
	dashboard.Get("/delivery-trends", cfg.Dashboard.DeliveryTrends)

	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Post("/", cfg.User.Create)
	users.Get("/", cfg.User.List)
	users.Get("/:id", cfg.User.GetByID)
	users.Put("/:id", cfg.User.Update)
	users.Delete("/:id", cfg.User.Deactivate)

	warehouses := protected.Group("/warehouses")
	warehouses.Get("/", cfg.Warehouse.List)
	warehouses.Get("/:id", cfg.Warehouse.GetByID)

	warehouseWrites := warehouses.Group("", RequireRole(entity.RoleAdmin, entity.RoleManager))
	warehouseWrites.Post("/", cfg.Warehouse.Create)
	warehouseWrites.Put("/:id", cfg.Warehouse.Update)
	warehouseWrites.Delete("/:id", cfg.Warehouse.Deactivate)
}
