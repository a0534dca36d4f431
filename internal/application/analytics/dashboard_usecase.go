// Package analytics contiene los casos de uso de solo lectura del
// tablero operativo: contadores, agrupaciones por estado, actividad
// reciente, métricas de desempeño y tendencias de entrega.
package analytics

import (
	"context"
	"fmt"
	"math"

	"github.com/manishholla/logitrack-api/internal/application/dto"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

// Límites de los parámetros de consulta.
const (
	defaultDays          = 30
	maxDays              = 365
	defaultActivityLimit = 10
	maxActivityLimit     = 50
)

// DashboardUseCase agregaciones de lectura sobre envíos y su log de
// estados. Nunca escribe; una ventana sin datos produce ceros, no error.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetStats devuelve los seis contadores del tablero, opcionalmente
// restringidos a una bodega.
func (uc *DashboardUseCase) GetStats(ctx context.Context, warehouseID string) (*dto.DashboardStatsDTO, error) {
	stats, err := uc.repo.GetStats(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: stats: %w", err)
	}
	return &dto.DashboardStatsDTO{
		TotalConsignments:     stats.Total,
		PendingConsignments:   stats.Pending,
		InTransitConsignments: stats.InTransit,
		DeliveredConsignments: stats.Delivered,
		TodayConsignments:     stats.Today,
		WeekDelivered:         stats.WeekDelivered,
	}, nil
}

// GetCountsByStatus agrupa los envíos de la ventana por estado,
// ordenados por conteo descendente.
func (uc *DashboardUseCase) GetCountsByStatus(ctx context.Context, warehouseID string, days int) ([]dto.StatusCountDTO, error) {
	counts, err := uc.repo.GetCountsByStatus(ctx, warehouseID, clampDays(days))
	if err != nil {
		return nil, fmt.Errorf("dashboard: conteo por estado: %w", err)
	}
	out := make([]dto.StatusCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.StatusCountDTO{Status: c.Status, Count: c.Count})
	}
	return out, nil
}

// GetRecentActivities devuelve los últimos cambios de estado, el más
// reciente primero.
func (uc *DashboardUseCase) GetRecentActivities(ctx context.Context, warehouseID string, limit int) ([]dto.ActivityDTO, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	rows, err := uc.repo.GetRecentActivities(ctx, warehouseID, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", err)
	}
	out := make([]dto.ActivityDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ActivityDTO{
			ConsignmentID:  r.ConsignmentID,
			TrackingNumber: r.TrackingNumber,
			FromStatus:     r.FromStatus,
			ToStatus:       r.ToStatus,
			Notes:          r.Notes,
			CreatedAt:      r.CreatedAt,
		})
	}
	return out, nil
}

// GetPerformanceMetrics calcula la tasa de éxito y el tiempo promedio
// de entrega de la ventana.
//
//	total_processed   = envíos en {delivered, delivery_failed, lost}
//	success_rate      = delivered / total_processed × 100 (0 si no hay procesados)
//	avg_delivery_hours = promedio de (delivered_at − created_at) en horas
func (uc *DashboardUseCase) GetPerformanceMetrics(ctx context.Context, warehouseID string, days int) (*dto.PerformanceMetricsDTO, error) {
	row, err := uc.repo.GetPerformance(ctx, warehouseID, clampDays(days))
	if err != nil {
		return nil, fmt.Errorf("dashboard: métricas de desempeño: %w", err)
	}

	successRate := 0.0
	if row.TotalProcessed > 0 {
		successRate = float64(row.SuccessfullyDelivered) / float64(row.TotalProcessed) * 100
	}
	return &dto.PerformanceMetricsDTO{
		DeliverySuccessRate:      round2(successRate),
		AverageDeliveryTimeHours: round2(row.AvgDeliveryHours),
		TotalProcessed:           row.TotalProcessed,
		SuccessfullyDelivered:    row.SuccessfullyDelivered,
	}, nil
}

// GetDeliveryTrends agrupa por fecha calendario de creación dentro de
// la ventana, fecha más reciente primero.
func (uc *DashboardUseCase) GetDeliveryTrends(ctx context.Context, warehouseID string, days int) ([]dto.TrendPointDTO, error) {
	rows, err := uc.repo.GetDeliveryTrends(ctx, warehouseID, clampDays(days))
	if err != nil {
		return nil, fmt.Errorf("dashboard: tendencias: %w", err)
	}
	out := make([]dto.TrendPointDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TrendPointDTO{
			Date:                  r.Date.Format("2006-01-02"),
			TotalConsignments:     r.TotalConsignments,
			DeliveredConsignments: r.DeliveredConsignments,
		})
	}
	return out, nil
}

func clampDays(days int) int {
	if days <= 0 {
		return defaultDays
	}
	if days > maxDays {
		return maxDays
	}
	return days
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
