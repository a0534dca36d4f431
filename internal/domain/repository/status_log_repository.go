package repository

import (
	"context"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
)

// StatusLogRepository define el puerto del registro de auditoría de
// cambios de estado. Solo inserta: las entradas nunca se modifican.
type StatusLogRepository interface {
	// Append inserta una entrada de auditoría. Debe ejecutarse en la
	// misma transacción que el cambio de estado que la origina; ver
	// consignment.TxRunner.
	Append(ctx context.Context, e *entity.StatusLogEntry) error
}
