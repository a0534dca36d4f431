package entity

import "time"

// Roles de usuario. Admin y manager ven todas las bodegas; el resto
// queda restringido a su bodega asignada.
const (
	RoleAdmin             = "admin"
	RoleManager           = "manager"
	RoleSupervisor        = "supervisor"
	RoleDeliveryExecutive = "delivery_executive"
)

// CanViewAllWarehouses indica si el rol puede consultar sin restricción de bodega.
func CanViewAllWarehouses(role string) bool {
	return role == RoleAdmin || role == RoleManager
}

// User un usuario del sistema, siempre adscrito a una bodega.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Phone        *string
	Role         string
	WarehouseID  string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
