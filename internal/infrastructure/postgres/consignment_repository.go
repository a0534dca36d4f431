package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/manishholla/logitrack-api/internal/domain"
	"github.com/manishholla/logitrack-api/internal/domain/entity"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

var _ repository.ConsignmentRepository = (*ConsignmentRepo)(nil)

const consignmentColumns = `
	id, tracking_number, sender_name, sender_phone, sender_address,
	receiver_name, receiver_phone, receiver_address, weight, dimensions,
	value, current_warehouse_id, destination_warehouse_id, status,
	assigned_to, delivered_at, created_at, updated_at`

// ConsignmentRepo implementación del puerto ConsignmentRepository
// sobre PostgreSQL (usable con pool o tx).
type ConsignmentRepo struct {
	q Querier
}

// NewConsignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsignmentRepository(q Querier) *ConsignmentRepo {
	return &ConsignmentRepo{q: q}
}

// Create persiste un envío nuevo. Una colisión del índice único de
// tracking_number se reporta como domain.ErrDuplicateTracking para que
// el caso de uso regenere la guía y reintente.
func (r *ConsignmentRepo) Create(ctx context.Context, c *entity.Consignment) error {
	query := `
		INSERT INTO consignments (
			id, tracking_number, sender_name, sender_phone, sender_address,
			receiver_name, receiver_phone, receiver_address, weight, dimensions,
			value, current_warehouse_id, destination_warehouse_id, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.TrackingNumber, c.SenderName, c.SenderPhone, c.SenderAddress,
		c.ReceiverName, c.ReceiverPhone, c.ReceiverAddress, c.Weight, c.Dimensions,
		c.Value, c.CurrentWarehouseID, c.DestinationWarehouseID, string(c.Status),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTracking
		}
		if isIntegrityViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrConstraint, err.Error())
		}
		return storageErr("insert consignment", err)
	}
	return nil
}

// GetByID obtiene un envío por ID, o (nil, nil) si no existe.
func (r *ConsignmentRepo) GetByID(ctx context.Context, id string) (*entity.Consignment, error) {
	query := `SELECT` + consignmentColumns + ` FROM consignments WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByTracking obtiene un envío por número de guía (rastreo público).
func (r *ConsignmentRepo) GetByTracking(ctx context.Context, trackingNumber string) (*entity.Consignment, error) {
	query := `SELECT` + consignmentColumns + ` FROM consignments WHERE tracking_number = $1`
	return r.getOne(ctx, query, trackingNumber)
}

// List devuelve una página de envíos (created_at DESC) y el total que
// cumple el filtro. Los filtros se combinan con AND.
func (r *ConsignmentRepo) List(ctx context.Context, filter repository.ConsignmentFilter, limit, offset int) ([]*entity.Consignment, int, error) {
	where := ""
	args := []any{}
	pos := 1
	if filter.WarehouseID != "" {
		where += fmt.Sprintf(" AND current_warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, string(filter.Status))
		pos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM consignments WHERE 1=1` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, storageErr("count consignments", err)
	}

	query := `SELECT` + consignmentColumns + ` FROM consignments WHERE 1=1` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, storageErr("list consignments", err)
	}
	defer rows.Close()

	var list []*entity.Consignment
	for rows.Next() {
		c, err := scanConsignment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan consignment: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// UpdateStatus fija estado y updated_at; delivered_at solo se escribe
// la primera vez que el envío entra en delivered. Devuelve el registro
// actualizado o (nil, nil) si el id no existe.
func (r *ConsignmentRepo) UpdateStatus(ctx context.Context, id string, status entity.ConsignmentStatus) (*entity.Consignment, error) {
	query := `
		UPDATE consignments
		SET status = $2,
		    updated_at = NOW(),
		    delivered_at = CASE
		        WHEN $2 = 'delivered' AND delivered_at IS NULL THEN NOW()
		        ELSE delivered_at
		    END
		WHERE id = $1
		RETURNING` + consignmentColumns
	c, err := r.getOne(ctx, query, id, string(status))
	if err != nil {
		return nil, storageErr("update consignment status", err)
	}
	return c, nil
}

func (r *ConsignmentRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Consignment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("get consignment", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, storageErr("get consignment", err)
		}
		return nil, nil
	}
	c, err := scanConsignment(rows)
	if err != nil {
		return nil, fmt.Errorf("scan consignment: %w", err)
	}
	return c, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsignment(row rowScanner) (*entity.Consignment, error) {
	var c entity.Consignment
	var status string
	err := row.Scan(
		&c.ID, &c.TrackingNumber, &c.SenderName, &c.SenderPhone, &c.SenderAddress,
		&c.ReceiverName, &c.ReceiverPhone, &c.ReceiverAddress, &c.Weight, &c.Dimensions,
		&c.Value, &c.CurrentWarehouseID, &c.DestinationWarehouseID, &status,
		&c.AssignedTo, &c.DeliveredAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c.Status = entity.ConsignmentStatus(status)
	return &c, nil
}
