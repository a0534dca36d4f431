package dto

import "time"

// CreateWarehouseRequest entrada para registrar una bodega.
// El ID lo define el operador (códigos tipo "WH-DEL-01"), no se genera.
type CreateWarehouseRequest struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address" validate:"required"`
	City      string  `json:"city" validate:"required"`
	State     string  `json:"state" validate:"required"`
	Pincode   string  `json:"pincode" validate:"required"`
	Phone     *string `json:"phone"`
	ManagerID *string `json:"manager_id"`
}

// UpdateWarehouseRequest campos opcionales a actualizar.
type UpdateWarehouseRequest struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Pincode   *string `json:"pincode"`
	Phone     *string `json:"phone"`
	ManagerID *string `json:"manager_id"`
	IsActive  *bool   `json:"is_active"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Phone     *string   `json:"phone,omitempty"`
	ManagerID *string   `json:"manager_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
