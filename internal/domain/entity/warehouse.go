package entity

import "time"

// Warehouse representa una bodega de la red logística.
// El borrado es lógico (IsActive = false) para no romper las
// referencias de envíos históricos.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	City      string
	State     string
	Pincode   string
	Phone     *string
	ManagerID *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
