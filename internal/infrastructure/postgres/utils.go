package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/manishholla/logitrack-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}

// isIntegrityViolation cubre el resto de la clase 23 (FK, NOT NULL,
// CHECK): entradas que el almacén rechaza por integridad.
func isIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}

// isConnectionFailure detecta fallas de conexión con el servidor:
// clase 08 (connection exception) y clase 57 (operator intervention,
// p.ej. apagado o terminación forzada del backend).
func isConnectionFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57")
	}
	return false
}

// storageErr envuelve errores del almacén con la operación que los
// produjo: el vencimiento del context se traduce a ErrStorageTimeout
// y las fallas de conexión a ErrStorageUnavailable.
func storageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, domain.ErrStorageTimeout)
	}
	if isConnectionFailure(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStorageUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
