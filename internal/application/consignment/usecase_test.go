package consignment_test

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconsignment "github.com/manishholla/logitrack-api/internal/application/consignment"
	"github.com/manishholla/logitrack-api/internal/application/dto"
	"github.com/manishholla/logitrack-api/internal/domain"
	"github.com/manishholla/logitrack-api/internal/domain/entity"
	"github.com/manishholla/logitrack-api/internal/domain/repository"
	"github.com/manishholla/logitrack-api/internal/domain/tracking"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: implementan los puertos de persistencia imitando el
// comportamiento del adaptador PostgreSQL (índice único de guía,
// delivered_at de una sola escritura, orden created_at DESC).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu       sync.Mutex
	ordered  []*entity.Consignment // orden de inserción
	tracking map[string]struct{}
	logs     []entity.StatusLogEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{tracking: make(map[string]struct{})}
}

func (s *fakeStore) Create(_ context.Context, c *entity.Consignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.tracking[c.TrackingNumber]; dup {
		return domain.ErrDuplicateTracking
	}
	s.tracking[c.TrackingNumber] = struct{}{}
	clone := *c
	s.ordered = append(s.ordered, &clone)
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*entity.Consignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.ordered {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) GetByTracking(_ context.Context, code string) (*entity.Consignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.ordered {
		if c.TrackingNumber == code {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) List(_ context.Context, filter repository.ConsignmentFilter, limit, offset int) ([]*entity.Consignment, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matches []*entity.Consignment
	// created_at DESC: los insertados más recientemente primero.
	for i := len(s.ordered) - 1; i >= 0; i-- {
		c := s.ordered[i]
		if filter.WarehouseID != "" && c.CurrentWarehouseID != filter.WarehouseID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		clone := *c
		matches = append(matches, &clone)
	}
	total := len(matches)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matches[offset:end], total, nil
}

func (s *fakeStore) UpdateStatus(_ context.Context, id string, status entity.ConsignmentStatus) (*entity.Consignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.ordered {
		if c.ID != id {
			continue
		}
		c.Status = status
		c.UpdatedAt = time.Now()
		if status == entity.StatusDelivered && c.DeliveredAt == nil {
			now := time.Now()
			c.DeliveredAt = &now
		}
		clone := *c
		return &clone, nil
	}
	return nil, nil
}

func (s *fakeStore) Append(_ context.Context, e *entity.StatusLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := *e
	entry.CreatedAt = time.Now()
	s.logs = append(s.logs, entry)
	return nil
}

// Run ejecuta el callback sobre el mismo store (los fakes no simulan
// rollback; la atomicidad real la cubre el adaptador PostgreSQL).
func (s *fakeStore) Run(ctx context.Context, fn func(repository.ConsignmentRepository, repository.StatusLogRepository) error) error {
	return fn(s, s)
}

// seqGenerator devuelve códigos predefinidos en orden.
type seqGenerator struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func (g *seqGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next >= len(g.codes) {
		return "", fmt.Errorf("seqGenerator agotado")
	}
	code := g.codes[g.next]
	g.next++
	return code, nil
}

func newUseCase(store *fakeStore, gen appconsignment.TrackingGenerator) *appconsignment.UseCase {
	if gen == nil {
		gen = tracking.NewGenerator()
	}
	return appconsignment.NewUseCase(store, gen, store)
}

func validCreateRequest() dto.CreateConsignmentRequest {
	return dto.CreateConsignmentRequest{
		SenderName:             "Rahul Sharma",
		SenderPhone:            "+91-9811001100",
		SenderAddress:          "Karol Bagh, New Delhi",
		ReceiverName:           "Priya Patil",
		ReceiverPhone:          "+91-9822002200",
		ReceiverAddress:        "Andheri East, Mumbai",
		CurrentWarehouseID:     "WH-DEL-01",
		DestinationWarehouseID: "WH-MUM-01",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear un envío siempre arranca en pending, sin delivered_at y con una
// guía con el formato esperado.
func TestCreate_EstadoInicialPendiente(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store, nil)

	out, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, out.Status)
	assert.Nil(t, out.DeliveredAt)
	assert.NotEmpty(t, out.ID)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z]{3}[0-9]{9}$`), out.TrackingNumber)
	assert.False(t, out.CreatedAt.IsZero())
}

// Una colisión de guía se resuelve generando otra y reintentando.
func TestCreate_ReintentaAnteColision(t *testing.T) {
	store := newFakeStore()
	gen := &seqGenerator{codes: []string{"AAA111111111", "AAA111111111", "BBB222222222"}}
	uc := newUseCase(store, gen)

	first, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "AAA111111111", first.TrackingNumber)

	// El segundo create choca con la guía del primero y reintenta.
	second, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "BBB222222222", second.TrackingNumber)
}

// Cinco colisiones seguidas agotan los reintentos.
func TestCreate_AgotaReintentos(t *testing.T) {
	store := newFakeStore()
	dup := "CCC333333333"
	gen := &seqGenerator{codes: []string{dup, dup, dup, dup, dup, dup}}
	uc := newUseCase(store, gen)

	_, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, domain.ErrTrackingExhausted)
}

func TestCreate_CamposRequeridos(t *testing.T) {
	uc := newUseCase(newFakeStore(), nil)

	in := validCreateRequest()
	in.ReceiverAddress = ""
	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_PesoNegativo(t *testing.T) {
	uc := newUseCase(newFakeStore(), nil)

	in := validCreateRequest()
	w := -2.5
	in.Weight = &w
	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

// Cada cambio de estado produce exactamente una entrada de auditoría
// con el estado anterior y el solicitado.
func TestUpdateStatus_RegistraAuditoria(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store, nil)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	notes := "dispatched"
	out, err := uc.UpdateStatus(context.Background(), created.ID, dto.StatusUpdateRequest{
		Status: entity.StatusInTransit,
		Notes:  &notes,
	}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.StatusInTransit, out.Status)

	require.Len(t, store.logs, 1)
	entry := store.logs[0]
	assert.Equal(t, created.ID, entry.ConsignmentID)
	assert.Equal(t, entity.StatusPending, entry.FromStatus)
	assert.Equal(t, entity.StatusInTransit, entry.ToStatus)
	assert.Equal(t, "user-1", entry.ChangedBy)
	require.NotNil(t, entry.Notes)
	assert.Equal(t, "dispatched", *entry.Notes)
}

// Pasar a delivered fija delivered_at una sola vez; un segundo paso a
// delivered no lo modifica.
func TestUpdateStatus_DeliveredAtUnaSolaVez(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store, nil)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	first, err := uc.UpdateStatus(context.Background(), created.ID, dto.StatusUpdateRequest{Status: entity.StatusDelivered}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, first.DeliveredAt)
	assert.False(t, first.DeliveredAt.Before(created.CreatedAt), "delivered_at debe ser >= created_at")

	time.Sleep(5 * time.Millisecond)
	second, err := uc.UpdateStatus(context.Background(), created.ID, dto.StatusUpdateRequest{Status: entity.StatusDelivered}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, second.DeliveredAt)
	assert.True(t, second.DeliveredAt.Equal(*first.DeliveredAt), "delivered_at no debe cambiar")

	// El re-log idempotente también se audita.
	assert.Len(t, store.logs, 2)
	assert.Equal(t, entity.StatusDelivered, store.logs[1].FromStatus)
	assert.Equal(t, entity.StatusDelivered, store.logs[1].ToStatus)
}

func TestUpdateStatus_NoExiste(t *testing.T) {
	uc := newUseCase(newFakeStore(), nil)

	out, err := uc.UpdateStatus(context.Background(), "no-such-id", dto.StatusUpdateRequest{Status: entity.StatusInTransit}, "user-1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	uc := newUseCase(newFakeStore(), nil)

	_, err := uc.UpdateStatus(context.Background(), "x", dto.StatusUpdateRequest{Status: "teleported"}, "user-1")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

// 45 registros, página 2 de 20 → 20 items, total 45, 3 páginas.
func TestList_Paginacion(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store, nil)

	for i := 0; i < 45; i++ {
		_, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), repository.ConsignmentFilter{}, dto.PageRequest{Page: 2, PageSize: 20})
	require.NoError(t, err)

	assert.Len(t, out.Items, 20)
	assert.Equal(t, 45, out.Total)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 2, out.Page)
}

func TestList_FiltroPorBodegaYEstado(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store, nil)

	a, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	inOther := validCreateRequest()
	inOther.CurrentWarehouseID = "WH-BLR-01"
	_, err = uc.Create(context.Background(), inOther)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), a.ID, dto.StatusUpdateRequest{Status: entity.StatusInTransit}, "user-1")
	require.NoError(t, err)

	out, err := uc.List(context.Background(), repository.ConsignmentFilter{
		WarehouseID: "WH-DEL-01",
		Status:      entity.StatusInTransit,
	}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, a.ID, out.Items[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo Delhi → Mumbai
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_DelhiMumbai(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, created.Status)
	assert.NotEmpty(t, created.TrackingNumber)
	assert.Nil(t, created.DeliveredAt)

	notes := "dispatched"
	_, err = uc.UpdateStatus(ctx, created.ID, dto.StatusUpdateRequest{Status: entity.StatusInTransit, Notes: &notes}, "user-1")
	require.NoError(t, err)
	require.Len(t, store.logs, 1)
	assert.Equal(t, entity.StatusPending, store.logs[0].FromStatus)
	assert.Equal(t, entity.StatusInTransit, store.logs[0].ToStatus)

	delivered, err := uc.UpdateStatus(ctx, created.ID, dto.StatusUpdateRequest{Status: entity.StatusDelivered}, "user-2")
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredAt)

	// El rastreo público ve el estado final.
	tracked, err := uc.GetByTracking(ctx, created.TrackingNumber)
	require.NoError(t, err)
	require.NotNil(t, tracked)
	assert.Equal(t, entity.StatusDelivered, tracked.Status)
}
