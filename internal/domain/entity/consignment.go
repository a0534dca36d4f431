package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsignmentStatus estado del ciclo de vida de un envío.
type ConsignmentStatus string

// Estados posibles de un envío. El flujo típico es
// pending → in_transit → out_for_delivery → delivered, pero el sistema
// no restringe transiciones: un delivery_failed puede volver a tránsito
// o pasar a returned según la operación en bodega.
const (
	StatusPending        ConsignmentStatus = "pending"
	StatusInTransit      ConsignmentStatus = "in_transit"
	StatusOutForDelivery ConsignmentStatus = "out_for_delivery"
	StatusDelivered      ConsignmentStatus = "delivered"
	StatusDeliveryFailed ConsignmentStatus = "delivery_failed"
	StatusLost           ConsignmentStatus = "lost"
	StatusReturned       ConsignmentStatus = "returned"
)

// Valid indica si el valor corresponde a un estado conocido.
func (s ConsignmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusOutForDelivery,
		StatusDelivered, StatusDeliveryFailed, StatusLost, StatusReturned:
		return true
	}
	return false
}

// Terminal indica si el estado cierra el ciclo de vida del envío
// (candidato a archivado).
func (s ConsignmentStatus) Terminal() bool {
	switch s {
	case StatusDelivered, StatusReturned, StatusLost:
		return true
	}
	return false
}

// Consignment representa un envío rastreable entre dos bodegas.
// TrackingNumber es único e inmutable una vez asignado; DeliveredAt
// permanece nil hasta que el envío entra en estado delivered y no
// vuelve a cambiar después.
type Consignment struct {
	ID                     string
	TrackingNumber         string
	SenderName             string
	SenderPhone            string
	SenderAddress          string
	ReceiverName           string
	ReceiverPhone          string
	ReceiverAddress        string
	Weight                 *float64        // kg, opcional
	Dimensions             *string         // texto libre, ej. "30x20x15 cm"
	Value                  decimal.Decimal // valor declarado
	CurrentWarehouseID     string
	DestinationWarehouseID string
	Status                 ConsignmentStatus
	AssignedTo             *string // UserID del repartidor, opcional
	DeliveredAt            *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
