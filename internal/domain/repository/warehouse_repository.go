package repository

import (
	"context"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para bodegas.
// GetByID y List solo ven bodegas activas; Deactivate es borrado lógico.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, int, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	Deactivate(ctx context.Context, id string) error
}
