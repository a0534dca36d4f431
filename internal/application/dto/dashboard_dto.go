package dto

import (
	"time"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
)

// DashboardStatsDTO los seis contadores del tablero principal.
type DashboardStatsDTO struct {
	TotalConsignments     int `json:"total_consignments"`
	PendingConsignments   int `json:"pending_consignments"`
	InTransitConsignments int `json:"in_transit_consignments"`
	DeliveredConsignments int `json:"delivered_consignments"`
	TodayConsignments     int `json:"today_consignments"`
	WeekDelivered         int `json:"week_delivered"`
}

// StatusCountDTO conteo por estado dentro de la ventana consultada.
type StatusCountDTO struct {
	Status entity.ConsignmentStatus `json:"status"`
	Count  int                      `json:"count"`
}

// ActivityDTO cambio de estado reciente, unido al número de guía.
type ActivityDTO struct {
	ConsignmentID  string                   `json:"consignment_id"`
	TrackingNumber string                   `json:"tracking_number"`
	FromStatus     entity.ConsignmentStatus `json:"from_status"`
	ToStatus       entity.ConsignmentStatus `json:"to_status"`
	Notes          *string                  `json:"notes,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
}

// PerformanceMetricsDTO métricas de desempeño de entregas.
// Tasas y promedios redondeados a 2 decimales; cero si la ventana
// no tiene envíos procesados.
type PerformanceMetricsDTO struct {
	DeliverySuccessRate      float64 `json:"delivery_success_rate"`
	AverageDeliveryTimeHours float64 `json:"average_delivery_time_hours"`
	TotalProcessed           int     `json:"total_processed"`
	SuccessfullyDelivered    int     `json:"successfully_delivered"`
}

// TrendPointDTO totales de un día calendario.
type TrendPointDTO struct {
	Date                  string `json:"date"` // YYYY-MM-DD
	TotalConsignments     int    `json:"total_consignments"`
	DeliveredConsignments int    `json:"delivered_consignments"`
}
