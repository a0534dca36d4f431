package repository

import (
	"context"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
)

// ConsignmentFilter filtros opcionales del listado; se combinan con AND.
type ConsignmentFilter struct {
	WarehouseID string // bodega actual; vacío = todas
	Status      entity.ConsignmentStatus
}

// ConsignmentRepository define el puerto de persistencia para envíos (DIP).
type ConsignmentRepository interface {
	// Create persiste un envío nuevo. Devuelve domain.ErrDuplicateTracking
	// si el número de guía colisiona con uno existente y
	// domain.ErrConstraint ante otras violaciones de integridad.
	Create(ctx context.Context, c *entity.Consignment) error

	// GetByID devuelve el envío o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Consignment, error)

	// GetByTracking devuelve el envío por número de guía o (nil, nil).
	// Es el camino del rastreo público, sin autenticación.
	GetByTracking(ctx context.Context, trackingNumber string) (*entity.Consignment, error)

	// List devuelve una página de envíos ordenados por created_at DESC
	// y el total de registros que cumplen el filtro.
	List(ctx context.Context, filter ConsignmentFilter, limit, offset int) ([]*entity.Consignment, int, error)

	// UpdateStatus fija el estado y updated_at. Si el estado nuevo es
	// delivered y delivered_at aún es NULL, lo fija también (una sola vez).
	// Devuelve el registro actualizado o (nil, nil) si el id no existe.
	UpdateStatus(ctx context.Context, id string, status entity.ConsignmentStatus) (*entity.Consignment, error)
}
