package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manishholla/logitrack-api/internal/domain"
	"github.com/manishholla/logitrack-api/internal/domain/entity"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `
	id, name, address, city, state, pincode, phone, manager_id,
	is_active, created_at, updated_at`

// WarehouseRepo implementación del puerto WarehouseRepository sobre
// PostgreSQL. Las lecturas solo ven bodegas activas.
type WarehouseRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepo {
	return &WarehouseRepo{pool: pool}
}

// Create persiste una bodega nueva.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, address, city, state, pincode, phone, manager_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Name, w.Address, w.City, w.State, w.Pincode, w.Phone, w.ManagerID,
		w.IsActive, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: id de bodega ya registrado", domain.ErrConstraint)
		}
		return storageErr("insert warehouse", err)
	}
	return nil
}

// GetByID obtiene una bodega activa por ID, o (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	query := `SELECT` + warehouseColumns + ` FROM warehouses WHERE id = $1 AND is_active = true`
	var w entity.Warehouse
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Address, &w.City, &w.State, &w.Pincode, &w.Phone, &w.ManagerID,
		&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get warehouse", err)
	}
	return &w, nil
}

// List lista bodegas activas con paginación (created_at DESC).
func (r *WarehouseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM warehouses WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, storageErr("count warehouses", err)
	}

	query := `SELECT` + warehouseColumns + `
		FROM warehouses WHERE is_active = true
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, storageErr("list warehouses", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.City, &w.State, &w.Pincode,
			&w.Phone, &w.ManagerID, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, total, rows.Err()
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $2, address = $3, city = $4, state = $5, pincode = $6,
		    phone = $7, manager_id = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Name, w.Address, w.City, w.State, w.Pincode,
		w.Phone, w.ManagerID, w.IsActive, w.UpdatedAt,
	)
	if err != nil {
		return storageErr("update warehouse", err)
	}
	return nil
}

// Deactivate marca la bodega como inactiva (borrado lógico).
func (r *WarehouseRepo) Deactivate(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE warehouses SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return storageErr("deactivate warehouse", err)
	}
	return nil
}
