package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manishholla/logitrack-api/pkg/logger"
)

// terminalStatuses estados que cierran el ciclo de vida y habilitan el
// archivado del envío.
var terminalStatuses = []string{"delivered", "returned", "lost"}

// Archiver mueve envíos terminales antiguos a la tabla fría
// consignments_archive y los borra de la tabla principal, ambas
// sentencias dentro de una misma transacción.
type Archiver struct {
	pool      *pgxpool.Pool
	log       *logger.Logger
	retention time.Duration
	interval  time.Duration
}

// NewArchiver construye el barrido de archivado.
func NewArchiver(pool *pgxpool.Pool, log *logger.Logger, retentionDays, intervalHours int) *Archiver {
	return &Archiver{
		pool:      pool,
		log:       log.Component("archiver"),
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		interval:  time.Duration(intervalHours) * time.Hour,
	}
}

// Start ejecuta el barrido periódicamente hasta que el context se
// cancele. Pensado para correr como goroutine desde main.
func (a *Archiver) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info().Msg("archivado detenido")
			return
		case <-ticker.C:
			moved, err := a.RunOnce(ctx)
			if err != nil {
				a.log.Error().Err(err).Msg("barrido de archivado")
				continue
			}
			if moved > 0 {
				a.log.Info().Int64("consignments", moved).Msg("envíos archivados")
			}
		}
	}
}

// RunOnce archiva los envíos terminales más antiguos que la retención
// configurada y devuelve cuántos se movieron. El log de estados se
// conserva en la tabla principal como historial.
func (a *Archiver) RunOnce(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-a.retention)

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return 0, storageErr("archiver begin", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insert := `
		INSERT INTO consignments_archive (` + consignmentColumns + `)
		SELECT` + consignmentColumns + `
		FROM consignments
		WHERE created_at < $1 AND status = ANY($2)`
	if _, err := tx.Exec(ctx, insert, cutoff, terminalStatuses); err != nil {
		return 0, storageErr("archiver insert", err)
	}

	del := `
		DELETE FROM consignments
		WHERE created_at < $1 AND status = ANY($2)`
	tag, err := tx.Exec(ctx, del, cutoff, terminalStatuses)
	if err != nil {
		return 0, storageErr("archiver delete", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("archiver commit: %w", err)
	}
	return tag.RowsAffected(), nil
}
