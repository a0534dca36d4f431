package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de acceso más el usuario autenticado.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// CreateUserRequest entrada para crear un usuario (solo admin).
type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	FullName    string  `json:"full_name" validate:"required"`
	Phone       *string `json:"phone"`
	Role        string  `json:"role" validate:"required"`
	WarehouseID string  `json:"warehouse_id" validate:"required"`
}

// UpdateUserRequest campos opcionales a actualizar.
type UpdateUserRequest struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	Role        *string `json:"role"`
	WarehouseID *string `json:"warehouse_id"`
	IsActive    *bool   `json:"is_active"`
}

// UserResponse salida de un usuario (nunca incluye el hash de password).
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Phone       *string   `json:"phone,omitempty"`
	Role        string    `json:"role"`
	WarehouseID string    `json:"warehouse_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
