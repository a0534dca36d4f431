package entity

import "time"

// StatusLogEntry registro de auditoría de un cambio de estado.
// Es append-only: nunca se actualiza ni se borra desde la aplicación.
// Se crea en la misma transacción que el UPDATE de estado del envío.
type StatusLogEntry struct {
	ID            int64
	ConsignmentID string
	FromStatus    ConsignmentStatus
	ToStatus      ConsignmentStatus
	ChangedBy     string // UserID
	Notes         *string
	CreatedAt     time.Time
}
