package repository

import (
	"context"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
)

// UserFilter filtros opcionales del listado de usuarios.
type UserFilter struct {
	WarehouseID string
	Role        string
}

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, int, error)
	Update(ctx context.Context, user *entity.User) error
}
