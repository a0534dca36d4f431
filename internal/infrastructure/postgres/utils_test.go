package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/manishholla/logitrack-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de clasificación de errores del almacén
// ──────────────────────────────────────────────────────────────────────────────

// Context vencido → ErrStorageTimeout.
func TestStorageErr_DeadlineExcedido_EsTimeout(t *testing.T) {
	err := storageErr("consignments list", context.DeadlineExceeded)

	assert.ErrorIs(t, err, domain.ErrStorageTimeout,
		"el vencimiento del context debe traducirse a ErrStorageTimeout")
	assert.Contains(t, err.Error(), "consignments list",
		"el error debe conservar la operación que lo produjo")
}

// Falla de conexión (clase 08) → ErrStorageUnavailable.
func TestStorageErr_ConexionCaida_EsNoDisponible(t *testing.T) {
	// 08006 connection_failure
	pgErr := &pgconn.PgError{Code: "08006", Message: "connection failure"}
	err := storageErr("consignments get", fmt.Errorf("query: %w", pgErr))

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable,
		"una falla de conexión debe traducirse a ErrStorageUnavailable")
}

// Apagado del servidor (clase 57) → ErrStorageUnavailable.
func TestStorageErr_ServidorApagandose_EsNoDisponible(t *testing.T) {
	// 57P01 admin_shutdown
	pgErr := &pgconn.PgError{Code: "57P01", Message: "terminating connection"}
	err := storageErr("dashboard stats", pgErr)

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

// Otros errores SQL pasan envueltos sin reclasificar.
func TestStorageErr_ErrorSQLGenerico_NoSeReclasifica(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42703", Message: "undefined column"}
	err := storageErr("users list", pgErr)

	assert.NotErrorIs(t, err, domain.ErrStorageTimeout)
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)

	var got *pgconn.PgError
	assert.True(t, errors.As(err, &got), "el error original debe seguir accesible")
}

// Las violaciones de integridad (clase 23) no son indisponibilidad.
func TestStorageErr_ViolacionUnique_NoEsNoDisponible(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	err := storageErr("consignments create", pgErr)

	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.True(t, isUniqueViolation(pgErr))
}
