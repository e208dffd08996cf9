package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "oficina/internal/domain/catalog"
	"oficina/internal/infrastructure/persistence/memory"
	"oficina/pkg/logger"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewService(store.Catalog(), store.Movements(), logger.NewNop()), store
}

func TestService_CreatePart_Invalid(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreatePart(context.Background(), CreatePartCommand{Name: "Filtro", Price: -1})

	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestService_UpdateService(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateService(ctx, CreateServiceCommand{Name: "Troca de óleo", Price: 80})
	require.NoError(t, err)

	updated, err := svc.UpdateService(ctx, created.ID, CreateServiceCommand{Name: "Troca de óleo e filtro", Price: 95, DurationMin: 45})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 95.0, updated.Price)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestService_UpdateService_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateService(context.Background(), "missing", CreateServiceCommand{Name: "Alinhamento", Price: 120})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_UpdatePart_KeepsStock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreatePart(ctx, CreatePartCommand{Code: "VEL001", Name: "Vela de ignição", Price: 30, Stock: 8, MinStock: 4})
	require.NoError(t, err)

	updated, err := svc.UpdatePart(ctx, created.ID, CreatePartCommand{Code: "VEL001", Name: "Vela de ignição iridium", Price: 55, Stock: 99, MinStock: 2})
	require.NoError(t, err)
	assert.Equal(t, 55.0, updated.Price)
	assert.Equal(t, 8, updated.Stock)
	assert.Equal(t, 2, updated.MinStock)
}

func TestService_CriticalStock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePart(ctx, CreatePartCommand{Code: "FRE001", Name: "Pastilhas de freio", Price: 180, Stock: 3, MinStock: 5})
	require.NoError(t, err)
	_, err = svc.CreatePart(ctx, CreatePartCommand{Code: "OLE001", Name: "Óleo motor 5W30", Price: 45, Stock: 15, MinStock: 5})
	require.NoError(t, err)

	critical, err := svc.CriticalStock(ctx)
	require.NoError(t, err)
	require.Len(t, critical, 1)
	assert.Equal(t, "FRE001", critical[0].Code)
}

func TestService_RegisterMovement_InRaisesStock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	part, err := svc.CreatePart(ctx, CreatePartCommand{Code: "COR001", Name: "Correia dentada", Price: 85, Stock: 2, MinStock: 1})
	require.NoError(t, err)

	mv, err := svc.RegisterMovement(ctx, MovementCommand{PartID: part.ID, Type: "in", Quantity: 10, Reason: "compra fornecedor"})
	require.NoError(t, err)
	assert.Equal(t, domain.MovementIn, mv.Type)

	parts, err := svc.ListParts(ctx, "COR001")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, 12, parts[0].Stock)
}

func TestService_RegisterMovement_OutBeyondStock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	part, err := svc.CreatePart(ctx, CreatePartCommand{Code: "FIL001", Name: "Filtro de óleo", Price: 25, Stock: 2, MinStock: 1})
	require.NoError(t, err)

	_, err = svc.RegisterMovement(ctx, MovementCommand{PartID: part.ID, Type: "out", Quantity: 5, Reason: "ajuste"})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// stock untouched on rejection
	got, err := svc.ListParts(ctx, "FIL001")
	require.NoError(t, err)
	assert.Equal(t, 2, got[0].Stock)
}

func TestService_RegisterMovement_UnknownPart(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterMovement(context.Background(), MovementCommand{PartID: "ghost", Type: "in", Quantity: 1, Reason: "x"})

	assert.ErrorIs(t, err, ErrPartNotFound)
}
