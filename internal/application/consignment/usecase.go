// Package consignment contiene el ciclo de vida de los envíos: creación
// con asignación de guía y transición de estado con auditoría atómica.
package consignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/manishholla/logitrack-api/internal/application/dto"
	"github.com/manishholla/logitrack-api/internal/domain"
	"github.com/manishholla/logitrack-api/internal/domain/entity"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
)

// maxTrackingAttempts intentos de inserción ante colisión de guía antes
// de rendirse con ErrTrackingExhausted.
const maxTrackingAttempts = 5

// UseCase orquesta creación y transiciones de estado de envíos.
// Es el único dueño del camino de escritura sobre Consignment.Status
// y sobre el log de auditoría.
type UseCase struct {
	consignments repository.ConsignmentRepository
	generator    TrackingGenerator
	tx           TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(consignments repository.ConsignmentRepository, generator TrackingGenerator, tx TxRunner) *UseCase {
	return &UseCase{consignments: consignments, generator: generator, tx: tx}
}

// Create valida la entrada, asigna id y número de guía y persiste el
// envío con estado inicial pending. Si la guía generada colisiona con
// una existente, genera otra y reintenta hasta maxTrackingAttempts veces.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateConsignmentRequest) (*dto.ConsignmentResponse, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	value := decimal.Zero
	if in.Value != nil {
		value = *in.Value
	}
	now := time.Now()
	c := &entity.Consignment{
		ID:                     uuid.New().String(),
		SenderName:             in.SenderName,
		SenderPhone:            in.SenderPhone,
		SenderAddress:          in.SenderAddress,
		ReceiverName:           in.ReceiverName,
		ReceiverPhone:          in.ReceiverPhone,
		ReceiverAddress:        in.ReceiverAddress,
		Weight:                 in.Weight,
		Dimensions:             in.Dimensions,
		Value:                  value,
		CurrentWarehouseID:     in.CurrentWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Status:                 entity.StatusPending,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	for attempt := 0; attempt < maxTrackingAttempts; attempt++ {
		code, err := uc.generator.Generate()
		if err != nil {
			return nil, fmt.Errorf("generar guía: %w", err)
		}
		c.TrackingNumber = code

		err = uc.consignments.Create(ctx, c)
		if err == nil {
			return toConsignmentResponse(c), nil
		}
		if errors.Is(err, domain.ErrDuplicateTracking) {
			continue
		}
		return nil, err
	}
	return nil, domain.ErrTrackingExhausted
}

// GetByID devuelve el envío o (nil, nil) si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ConsignmentResponse, error) {
	c, err := uc.consignments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toConsignmentResponse(c), nil
}

// GetByTracking devuelve el envío por su número de guía (rastreo público).
func (uc *UseCase) GetByTracking(ctx context.Context, trackingNumber string) (*dto.ConsignmentResponse, error) {
	c, err := uc.consignments.GetByTracking(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	return toConsignmentResponse(c), nil
}

// List devuelve una página de envíos filtrados por bodega y/o estado.
func (uc *UseCase) List(ctx context.Context, filter repository.ConsignmentFilter, page dto.PageRequest) (*dto.PaginatedResponse[dto.ConsignmentResponse], error) {
	page.DefaultPage()
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	list, total, err := uc.consignments.List(ctx, filter, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConsignmentResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConsignmentResponse(c))
	}
	return dto.NewPaginatedResponse(items, total, page.Page, page.PageSize), nil
}

// UpdateStatus cambia el estado de un envío y registra la transición en
// el log de auditoría dentro de una única transacción. Un cambio al
// mismo estado actual también se escribe y se registra (re-log
// idempotente, comportamiento heredado). Devuelve (nil, nil) si el
// envío no existe.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, in dto.StatusUpdateRequest, changedBy string) (*dto.ConsignmentResponse, error) {
	if !in.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	current, err := uc.consignments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	var updated *entity.Consignment
	err = uc.tx.Run(ctx, func(consignments repository.ConsignmentRepository, statusLog repository.StatusLogRepository) error {
		updated, err = consignments.UpdateStatus(ctx, id, in.Status)
		if err != nil {
			return err
		}
		if updated == nil {
			// Borrado entre la lectura y la transacción.
			return domain.ErrNotFound
		}
		return statusLog.Append(ctx, &entity.StatusLogEntry{
			ConsignmentID: id,
			FromStatus:    current.Status,
			ToStatus:      in.Status,
			ChangedBy:     changedBy,
			Notes:         in.Notes,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toConsignmentResponse(updated), nil
}

func validateCreate(in dto.CreateConsignmentRequest) error {
	required := map[string]string{
		"sender_name":              in.SenderName,
		"sender_phone":             in.SenderPhone,
		"sender_address":           in.SenderAddress,
		"receiver_name":            in.ReceiverName,
		"receiver_phone":           in.ReceiverPhone,
		"receiver_address":         in.ReceiverAddress,
		"current_warehouse_id":     in.CurrentWarehouseID,
		"destination_warehouse_id": in.DestinationWarehouseID,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, field)
		}
	}
	if in.Weight != nil && *in.Weight < 0 {
		return fmt.Errorf("%w: weight no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Value != nil && in.Value.IsNegative() {
		return fmt.Errorf("%w: value no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toConsignmentResponse(c *entity.Consignment) *dto.ConsignmentResponse {
	if c == nil {
		return nil
	}
	return &dto.ConsignmentResponse{
		ID:                     c.ID,
		TrackingNumber:         c.TrackingNumber,
		SenderName:             c.SenderName,
		SenderPhone:            c.SenderPhone,
		SenderAddress:          c.SenderAddress,
		ReceiverName:           c.ReceiverName,
		ReceiverPhone:          c.ReceiverPhone,
		ReceiverAddress:        c.ReceiverAddress,
		Weight:                 c.Weight,
		Dimensions:             c.Dimensions,
		Value:                  c.Value,
		CurrentWarehouseID:     c.CurrentWarehouseID,
		DestinationWarehouseID: c.DestinationWarehouseID,
		Status:                 c.Status,
		AssignedTo:             c.AssignedTo,
		DeliveredAt:            c.DeliveredAt,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}
