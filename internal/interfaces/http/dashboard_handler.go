package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manishholla/logitrack-api/internal/application/analytics"
)

// DashboardHandler expone las métricas agregadas del tablero. Todas
// las consultas se acotan a la bodega del usuario salvo para admin y
// manager, que pueden pedir cualquier bodega o todas.
type DashboardHandler struct {
	useCase *analytics.DashboardUseCase
}

func NewDashboardHandler(useCase *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{useCase: useCase}
}

// Stats contadores generales del tablero.
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	warehouseID := ScopeWarehouse(c, c.Query("warehouse_id"))
	resp, err := h.useCase.GetStats(c.UserContext(), warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ConsignmentsByStatus distribución por estado en la ventana pedida.
// GET /api/dashboard/consignments-by-status?days=30
func (h *DashboardHandler) ConsignmentsByStatus(c *fiber.Ctx) error {
	warehouseID := ScopeWarehouse(c, c.Query("warehouse_id"))
	resp, err := h.useCase.GetCountsByStatus(c.UserContext(), warehouseID, c.QueryInt("days"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// RecentActivities últimos cambios de estado registrados.
// GET /api/dashboard/recent-activities?limit=10
func (h *DashboardHandler) RecentActivities(c *fiber.Ctx) error {
	warehouseID := ScopeWarehouse(c, c.Query("warehouse_id"))
	resp, err := h.useCase.GetRecentActivities(c.UserContext(), warehouseID, c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PerformanceMetrics tasa de éxito y tiempo medio de entrega.
// GET /api/dashboard/performance-metrics?days=30
func (h *DashboardHandler) PerformanceMetrics(c *fiber.Ctx) error {
	warehouseID := ScopeWarehouse(c, c.Query("warehouse_id"))
	resp, err := h.useCase.GetPerformanceMetrics(c.UserContext(), warehouseID, c.QueryInt("days"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeliveryTrends entregas por día para la ventana pedida.
// GET /api/dashboard/delivery-trends?days=30
func (h *DashboardHandler) DeliveryTrends(c *fiber.Ctx) error {
	warehouseID := ScopeWarehouse(c, c.Query("warehouse_id"))
	resp, err := h.useCase.GetDeliveryTrends(c.UserContext(), warehouseID, c.QueryInt("days"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
