package repository

import (
	"context"
	"time"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
)

// DashboardStats los seis contadores del tablero.
// "Today" cuenta envíos creados en la fecha calendario actual;
// "WeekDelivered" cuenta entregados creados en los últimos 7 días.
type DashboardStats struct {
	Total         int
	Pending       int
	InTransit     int
	Delivered     int
	Today         int
	WeekDelivered int
}

// StatusCount conteo de envíos por estado dentro de la ventana.
type StatusCount struct {
	Status entity.ConsignmentStatus
	Count  int
}

// ActivityRow entrada del log de auditoría unida al número de guía.
type ActivityRow struct {
	ConsignmentID  string
	TrackingNumber string
	FromStatus     entity.ConsignmentStatus
	ToStatus       entity.ConsignmentStatus
	Notes          *string
	CreatedAt      time.Time
}

// PerformanceRow métricas crudas de desempeño de entregas.
// AvgDeliveryHours ya viene en horas desde la consulta; el use case
// redondea a 2 decimales.
type PerformanceRow struct {
	TotalProcessed        int
	SuccessfullyDelivered int
	AvgDeliveryHours      float64
}

// TrendRow totales por fecha calendario de creación.
type TrendRow struct {
	Date                  time.Time
	TotalConsignments     int
	DeliveredConsignments int
}

// DashboardRepository consultas de solo lectura para el tablero.
// warehouseID vacío significa sin restricción; el valor siempre viaja
// como parámetro enlazado, nunca interpolado en el SQL.
type DashboardRepository interface {
	GetStats(ctx context.Context, warehouseID string) (*DashboardStats, error)

	// GetCountsByStatus agrupa por estado los envíos creados en los
	// últimos `days` días, ordenados por conteo descendente.
	GetCountsByStatus(ctx context.Context, warehouseID string, days int) ([]StatusCount, error)

	// GetRecentActivities devuelve las últimas `limit` entradas del log
	// de estados, la más reciente primero.
	GetRecentActivities(ctx context.Context, warehouseID string, limit int) ([]ActivityRow, error)

	// GetPerformance devuelve conteos de procesados/entregados y el
	// promedio de horas de entrega de la ventana. Ventana vacía = ceros.
	GetPerformance(ctx context.Context, warehouseID string, days int) (*PerformanceRow, error)

	// GetDeliveryTrends agrupa por fecha de creación dentro de la
	// ventana, fecha más reciente primero.
	GetDeliveryTrends(ctx context.Context, warehouseID string, days int) ([]TrendRow, error)
}
