// seed puebla una base de datos vacía con datos de arranque: tres
// bodegas, un usuario admin y unos envíos de muestra para el tablero.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (DATABASE_URL, etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/manishholla/logitrack-api/internal/domain/entity"
	"github.com/manishholla/logitrack-api/internal/domain/tracking"
	"github.com/manishholla/logitrack-api/internal/infrastructure/postgres"
	"github.com/manishholla/logitrack-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	warehouses := []struct {
		id, name, address, city, state, pincode string
	}{
		{"WH-DEL", "Bodega Delhi", "Plot 14, Okhla Industrial Area", "New Delhi", "Delhi", "110020"},
		{"WH-MUM", "Bodega Mumbai", "Unit 7, MIDC Andheri East", "Mumbai", "Maharashtra", "400093"},
		{"WH-BLR", "Bodega Bangalore", "12 Hosur Road, Electronic City", "Bangalore", "Karnataka", "560100"},
	}
	for _, w := range warehouses {
		_, err := pool.Exec(ctx, `
			INSERT INTO warehouses (id, name, address, city, state, pincode, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, true, NOW(), NOW())
			ON CONFLICT (id) DO NOTHING`,
			w.id, w.name, w.address, w.city, w.state, w.pincode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar bodega %s: %v\n", w.id, err)
			os.Exit(1)
		}
	}

	adminID := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, role, warehouse_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING`,
		adminID, "admin@logitrack.local", string(hash), "Administrador", entity.RoleAdmin, "WH-DEL")
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar admin: %v\n", err)
		os.Exit(1)
	}

	gen := tracking.NewGenerator()
	samples := []struct {
		from, to string
		status   entity.ConsignmentStatus
	}{
		{"WH-DEL", "WH-MUM", entity.StatusPending},
		{"WH-DEL", "WH-BLR", entity.StatusInTransit},
		{"WH-MUM", "WH-DEL", entity.StatusOutForDelivery},
		{"WH-BLR", "WH-MUM", entity.StatusDelivered},
	}
	for i, s := range samples {
		code, err := gen.Generate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "generar tracking: %v\n", err)
			os.Exit(1)
		}
		var deliveredAt *time.Time
		if s.status == entity.StatusDelivered {
			now := time.Now()
			deliveredAt = &now
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO consignments (
				id, tracking_number, sender_name, sender_phone, sender_address,
				receiver_name, receiver_phone, receiver_address, value,
				current_warehouse_id, destination_warehouse_id, status,
				delivered_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
			ON CONFLICT DO NOTHING`,
			uuid.NewString(), code,
			fmt.Sprintf("Remitente %d", i+1), "+91-9800000000", "Dirección del remitente",
			fmt.Sprintf("Destinatario %d", i+1), "+91-9811111111", "Dirección del destinatario",
			"1500.00", s.from, s.to, s.status, deliveredAt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar envío: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("seed completado: 3 bodegas, 1 admin, 4 envíos de muestra")
}
