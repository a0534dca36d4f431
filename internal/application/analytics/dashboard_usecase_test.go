package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manishholla/logitrack-api/internal/application/analytics"
	"github.com/manishholla/logitrack-api/internal/domain/entity"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

// fakeDashboardRepo devuelve resultados precargados y registra los
// parámetros con los que fue invocado.
type fakeDashboardRepo struct {
	stats       *repository.DashboardStats
	counts      []repository.StatusCount
	activities  []repository.ActivityRow
	performance *repository.PerformanceRow
	trends      []repository.TrendRow

	lastWarehouse string
	lastDays      int
	lastLimit     int
}

func (f *fakeDashboardRepo) GetStats(_ context.Context, warehouseID string) (*repository.DashboardStats, error) {
	f.lastWarehouse = warehouseID
	return f.stats, nil
}

func (f *fakeDashboardRepo) GetCountsByStatus(_ context.Context, warehouseID string, days int) ([]repository.StatusCount, error) {
	f.lastWarehouse, f.lastDays = warehouseID, days
	return f.counts, nil
}

func (f *fakeDashboardRepo) GetRecentActivities(_ context.Context, warehouseID string, limit int) ([]repository.ActivityRow, error) {
	f.lastWarehouse, f.lastLimit = warehouseID, limit
	return f.activities, nil
}

func (f *fakeDashboardRepo) GetPerformance(_ context.Context, warehouseID string, days int) (*repository.PerformanceRow, error) {
	f.lastWarehouse, f.lastDays = warehouseID, days
	return f.performance, nil
}

func (f *fakeDashboardRepo) GetDeliveryTrends(_ context.Context, warehouseID string, days int) ([]repository.TrendRow, error) {
	f.lastWarehouse, f.lastDays = warehouseID, days
	return f.trends, nil
}

func TestGetStats_MapeaContadores(t *testing.T) {
	repo := &fakeDashboardRepo{stats: &repository.DashboardStats{
		Total: 120, Pending: 30, InTransit: 25, Delivered: 60, Today: 8, WeekDelivered: 14,
	}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetStats(context.Background(), "WH-DEL-01")
	require.NoError(t, err)

	assert.Equal(t, "WH-DEL-01", repo.lastWarehouse)
	assert.Equal(t, 120, out.TotalConsignments)
	assert.Equal(t, 30, out.PendingConsignments)
	assert.Equal(t, 25, out.InTransitConsignments)
	assert.Equal(t, 60, out.DeliveredConsignments)
	assert.Equal(t, 8, out.TodayConsignments)
	assert.Equal(t, 14, out.WeekDelivered)
}

// Ventana sin envíos procesados: tasa y promedio en cero, sin error.
func TestGetPerformanceMetrics_VentanaVacia(t *testing.T) {
	repo := &fakeDashboardRepo{performance: &repository.PerformanceRow{}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetPerformanceMetrics(context.Background(), "", 30)
	require.NoError(t, err)

	assert.Zero(t, out.DeliverySuccessRate)
	assert.Zero(t, out.AverageDeliveryTimeHours)
	assert.Zero(t, out.TotalProcessed)
	assert.Zero(t, out.SuccessfullyDelivered)
}

// La tasa de éxito se calcula sobre procesados y se redondea a 2 decimales.
func TestGetPerformanceMetrics_Redondeo(t *testing.T) {
	repo := &fakeDashboardRepo{performance: &repository.PerformanceRow{
		TotalProcessed:        3,
		SuccessfullyDelivered: 2,
		AvgDeliveryHours:      26.6666667,
	}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetPerformanceMetrics(context.Background(), "", 30)
	require.NoError(t, err)

	assert.InDelta(t, 66.67, out.DeliverySuccessRate, 0.001)
	assert.InDelta(t, 26.67, out.AverageDeliveryTimeHours, 0.001)
	assert.Equal(t, 3, out.TotalProcessed)
	assert.Equal(t, 2, out.SuccessfullyDelivered)
}

// days fuera de rango se ajusta a los límites 1–365 (defecto 30).
func TestClampDeDias(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetCountsByStatus(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, 30, repo.lastDays)

	_, err = uc.GetCountsByStatus(context.Background(), "", 9999)
	require.NoError(t, err)
	assert.Equal(t, 365, repo.lastDays)
}

// limit fuera de rango se ajusta a 1–50 (defecto 10).
func TestClampDeLimite(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetRecentActivities(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)

	_, err = uc.GetRecentActivities(context.Background(), "", 200)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
}

func TestGetCountsByStatus_PreservaOrden(t *testing.T) {
	repo := &fakeDashboardRepo{counts: []repository.StatusCount{
		{Status: entity.StatusDelivered, Count: 40},
		{Status: entity.StatusPending, Count: 12},
		{Status: entity.StatusLost, Count: 1},
	}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetCountsByStatus(context.Background(), "", 30)
	require.NoError(t, err)

	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Count, out[i].Count, "orden descendente por conteo")
	}
	total := 0
	for _, c := range out {
		total += c.Count
	}
	assert.Equal(t, 53, total)
}

func TestGetDeliveryTrends_FormateaFechas(t *testing.T) {
	repo := &fakeDashboardRepo{trends: []repository.TrendRow{
		{Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), TotalConsignments: 7, DeliveredConsignments: 4},
		{Date: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), TotalConsignments: 3, DeliveredConsignments: 1},
	}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetDeliveryTrends(context.Background(), "", 30)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "2026-02-10", out[0].Date)
	assert.Equal(t, 7, out[0].TotalConsignments)
	assert.Equal(t, 4, out[0].DeliveredConsignments)
	assert.Equal(t, "2026-02-09", out[1].Date)
}
