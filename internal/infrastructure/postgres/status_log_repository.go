package postgres

import (
	"context"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

var _ repository.StatusLogRepository = (*StatusLogRepo)(nil)

// StatusLogRepo adaptador append-only del log de auditoría de estados
// (usable con pool o tx; en el camino de escritura siempre va dentro
// de la transacción del cambio de estado).
type StatusLogRepo struct {
	q Querier
}

// NewStatusLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatusLogRepository(q Querier) *StatusLogRepo {
	return &StatusLogRepo{q: q}
}

// Append inserta una entrada de auditoría. created_at lo asigna el
// servidor de base de datos.
func (r *StatusLogRepo) Append(ctx context.Context, e *entity.StatusLogEntry) error {
	query := `
		INSERT INTO consignment_status_log (consignment_id, from_status, to_status, changed_by, notes)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		e.ConsignmentID, string(e.FromStatus), string(e.ToStatus), e.ChangedBy, e.Notes,
	)
	if err != nil {
		return storageErr("append status log", err)
	}
	return nil
}
