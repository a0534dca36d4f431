package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
)

// CreateConsignmentRequest entrada para crear un envío.
// El número de guía, el estado inicial y los timestamps los asigna el servidor.
type CreateConsignmentRequest struct {
	SenderName             string           `json:"sender_name" validate:"required"`
	SenderPhone            string           `json:"sender_phone" validate:"required"`
	SenderAddress          string           `json:"sender_address" validate:"required"`
	ReceiverName           string           `json:"receiver_name" validate:"required"`
	ReceiverPhone          string           `json:"receiver_phone" validate:"required"`
	ReceiverAddress        string           `json:"receiver_address" validate:"required"`
	Weight                 *float64         `json:"weight" validate:"omitempty,gte=0"`
	Dimensions             *string          `json:"dimensions"`
	Value                  *decimal.Decimal `json:"value" validate:"omitempty"`
	CurrentWarehouseID     string           `json:"current_warehouse_id" validate:"required"`
	DestinationWarehouseID string           `json:"destination_warehouse_id" validate:"required"`
}

// StatusUpdateRequest entrada para cambiar el estado de un envío.
type StatusUpdateRequest struct {
	Status entity.ConsignmentStatus `json:"status" validate:"required"`
	Notes  *string                  `json:"notes"`
}

// ConsignmentResponse salida completa de un envío.
type ConsignmentResponse struct {
	ID                     string                   `json:"id"`
	TrackingNumber         string                   `json:"tracking_number"`
	SenderName             string                   `json:"sender_name"`
	SenderPhone            string                   `json:"sender_phone"`
	SenderAddress          string                   `json:"sender_address"`
	ReceiverName           string                   `json:"receiver_name"`
	ReceiverPhone          string                   `json:"receiver_phone"`
	ReceiverAddress        string                   `json:"receiver_address"`
	Weight                 *float64                 `json:"weight,omitempty"`
	Dimensions             *string                  `json:"dimensions,omitempty"`
	Value                  decimal.Decimal          `json:"value"`
	CurrentWarehouseID     string                   `json:"current_warehouse_id"`
	DestinationWarehouseID string                   `json:"destination_warehouse_id"`
	Status                 entity.ConsignmentStatus `json:"status"`
	AssignedTo             *string                  `json:"assigned_to,omitempty"`
	DeliveredAt            *time.Time               `json:"delivered_at,omitempty"`
	CreatedAt              time.Time                `json:"created_at"`
	UpdatedAt              time.Time                `json:"updated_at"`
}
