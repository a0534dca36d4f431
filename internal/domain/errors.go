package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidStatus      = errors.New("estado de envío inválido")
	ErrDuplicateTracking  = errors.New("número de guía duplicado")
	ErrTrackingExhausted  = errors.New("no fue posible generar una guía única tras varios intentos")
	ErrConstraint         = errors.New("violación de integridad de datos")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrStorageTimeout     = errors.New("tiempo de espera agotado en la base de datos")
	ErrStorageUnavailable = errors.New("base de datos no disponible")
)
