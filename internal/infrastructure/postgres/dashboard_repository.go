package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el tablero operativo.
// El filtro de bodega siempre viaja como parámetro enlazado ($1);
// cadena vacía significa "todas las bodegas".
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador del tablero.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetStats devuelve los seis contadores en una sola pasada sobre la
// tabla usando agregados con FILTER.
func (r *DashboardRepo) GetStats(ctx context.Context, warehouseID string) (*repository.DashboardStats, error) {
	const query = `
	SELECT
	    COUNT(*)                                                             AS total,
	    COUNT(*) FILTER (WHERE status = 'pending')                           AS pending,
	    COUNT(*) FILTER (WHERE status = 'in_transit')                        AS in_transit,
	    COUNT(*) FILTER (WHERE status = 'delivered')                         AS delivered,
	    COUNT(*) FILTER (WHERE created_at::date = CURRENT_DATE)              AS today,
	    COUNT(*) FILTER (WHERE status = 'delivered'
	                     AND created_at >= CURRENT_DATE - INTERVAL '7 days') AS week_delivered
	FROM consignments
	WHERE ($1::text = '' OR current_warehouse_id = $1)`

	var s repository.DashboardStats
	err := r.pool.QueryRow(ctx, query, warehouseID).Scan(
		&s.Total, &s.Pending, &s.InTransit, &s.Delivered, &s.Today, &s.WeekDelivered,
	)
	if err != nil {
		return nil, storageErr("dashboard.GetStats", err)
	}
	return &s, nil
}

// GetCountsByStatus agrupa por estado los envíos creados en la ventana,
// ordenados por conteo descendente.
func (r *DashboardRepo) GetCountsByStatus(ctx context.Context, warehouseID string, days int) ([]repository.StatusCount, error) {
	const query = `
	SELECT status, COUNT(*) AS count
	FROM consignments
	WHERE created_at >= CURRENT_DATE - ($2 * INTERVAL '1 day')
	  AND ($1::text = '' OR current_warehouse_id = $1)
	GROUP BY status
	ORDER BY count DESC`

	rows, err := r.pool.Query(ctx, query, warehouseID, days)
	if err != nil {
		return nil, storageErr("dashboard.GetCountsByStatus", err)
	}
	defer rows.Close()

	var results []repository.StatusCount
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, storageErr("dashboard.GetCountsByStatus scan", err)
		}
		results = append(results, repository.StatusCount{
			Status: entity.ConsignmentStatus(status),
			Count:  count,
		})
	}
	return results, rows.Err()
}

// GetRecentActivities devuelve los últimos cambios de estado unidos al
// número de guía del envío, el más reciente primero.
func (r *DashboardRepo) GetRecentActivities(ctx context.Context, warehouseID string, limit int) ([]repository.ActivityRow, error) {
	const query = `
	SELECT
	    csl.consignment_id,
	    c.tracking_number,
	    csl.from_status,
	    csl.to_status,
	    csl.notes,
	    csl.created_at
	FROM consignment_status_log csl
	JOIN consignments c ON c.id = csl.consignment_id
	WHERE ($1::text = '' OR c.current_warehouse_id = $1)
	ORDER BY csl.created_at DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, warehouseID, limit)
	if err != nil {
		return nil, storageErr("dashboard.GetRecentActivities", err)
	}
	defer rows.Close()

	var results []repository.ActivityRow
	for rows.Next() {
		var row repository.ActivityRow
		var from, to string
		if err := rows.Scan(&row.ConsignmentID, &row.TrackingNumber, &from, &to, &row.Notes, &row.CreatedAt); err != nil {
			return nil, storageErr("dashboard.GetRecentActivities scan", err)
		}
		row.FromStatus = entity.ConsignmentStatus(from)
		row.ToStatus = entity.ConsignmentStatus(to)
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetPerformance devuelve conteos de procesados y entregados más el
// promedio de horas de entrega. COALESCE protege la ventana vacía:
// ceros, nunca error.
func (r *DashboardRepo) GetPerformance(ctx context.Context, warehouseID string, days int) (*repository.PerformanceRow, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE status IN ('delivered', 'delivery_failed', 'lost')) AS total_processed,
	    COUNT(*) FILTER (WHERE status = 'delivered')                               AS successfully_delivered,
	    COALESCE(
	        AVG(EXTRACT(EPOCH FROM (delivered_at - created_at)) / 3600)
	            FILTER (WHERE status = 'delivered' AND delivered_at IS NOT NULL),
	        0
	    )                                                                          AS avg_delivery_hours
	FROM consignments
	WHERE created_at >= CURRENT_DATE - ($2 * INTERVAL '1 day')
	  AND ($1::text = '' OR current_warehouse_id = $1)`

	var row repository.PerformanceRow
	err := r.pool.QueryRow(ctx, query, warehouseID, days).Scan(
		&row.TotalProcessed, &row.SuccessfullyDelivered, &row.AvgDeliveryHours,
	)
	if err != nil {
		return nil, storageErr("dashboard.GetPerformance", err)
	}
	return &row, nil
}

// GetDeliveryTrends agrupa por fecha calendario de creación dentro de
// la ventana, fecha más reciente primero.
func (r *DashboardRepo) GetDeliveryTrends(ctx context.Context, warehouseID string, days int) ([]repository.TrendRow, error) {
	const query = `
	SELECT
	    created_at::date                             AS date,
	    COUNT(*)                                     AS total_consignments,
	    COUNT(*) FILTER (WHERE status = 'delivered') AS delivered_consignments
	FROM consignments
	WHERE created_at >= CURRENT_DATE - ($2 * INTERVAL '1 day')
	  AND ($1::text = '' OR current_warehouse_id = $1)
	GROUP BY created_at::date
	ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, warehouseID, days)
	if err != nil {
		return nil, storageErr("dashboard.GetDeliveryTrends", err)
	}
	defer rows.Close()

	var results []repository.TrendRow
	for rows.Next() {
		var row repository.TrendRow
		if err := rows.Scan(&row.Date, &row.TotalConsignments, &row.DeliveredConsignments); err != nil {
			return nil, storageErr("dashboard.GetDeliveryTrends scan", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
