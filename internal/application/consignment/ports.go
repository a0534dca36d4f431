package consignment

import (
	"context"

	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

// TrackingGenerator produce números de guía nuevos. Lo implementa
// tracking.Generator; en tests se sustituye por un generador fijo.
type TrackingGenerator interface {
	Generate() (string, error)
}

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción. El cambio de estado y su entrada de auditoría deben
// confirmarse o revertirse juntos: ningún lector concurrente puede
// observar uno sin el otro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		consignments repository.ConsignmentRepository,
		statusLog repository.StatusLogRepository,
	) error) error
}
