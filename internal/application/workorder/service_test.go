package workorder

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oficina/internal/domain/catalog"
	domain "oficina/internal/domain/workorder"
	"oficina/internal/infrastructure/persistence/memory"
	"oficina/pkg/logger"
)

// MockPublisher is a mock for the Publisher interface
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWorkOrder(ctx context.Context, payload []byte) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newTestService(t *testing.T) (*Service, *memory.Store, *MockPublisher) {
	t.Helper()
	store := memory.NewStore()
	pub := new(MockPublisher)
	svc := NewService(store.WorkOrders(), store.Catalog(), store.Movements(), pub, logger.NewNop())

	ctx := context.Background()
	require.NoError(t, store.Catalog().SaveService(ctx, &catalog.Service{ID: "s1", Name: "Troca de óleo", Price: 80}))
	require.NoError(t, store.Catalog().SaveService(ctx, &catalog.Service{ID: "s2", Name: "Alinhamento", Price: 120}))
	require.NoError(t, store.Catalog().SavePart(ctx, &catalog.Part{ID: "p1", Name: "Óleo motor 5W30", Price: 45, Stock: 3}))
	require.NoError(t, store.Catalog().SavePart(ctx, &catalog.Part{ID: "p2", Name: "Correia dentada", Price: 85, Stock: 0}))

	return svc, store, pub
}

func TestService_SubmitOrder_Success(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	pub.On("PublishWorkOrder", ctx, mock.MatchedBy(func(payload []byte) bool {
		var o domain.WorkOrder
		return json.Unmarshal(payload, &o) == nil && o.ID != ""
	})).Return(nil)

	order, err := svc.SubmitOrder(ctx, SubmitOrderCommand{
		ClientID:  "c1",
		VehicleID: "v1",
		Services:  []LineCommand{{CatalogID: "s1", Quantity: 3}, {CatalogID: "s2", Quantity: 1}},
		Parts:     []LineCommand{{CatalogID: "p1", Quantity: 10}},
		LaborCost: 50,
		Discount:  20,
		Status:    domain.StatusOpen,
	})

	require.NoError(t, err)
	// 3×80 + 120 + saturated 3×45 + 50 − 20
	assert.Equal(t, 360.0+135.0+30.0, order.Total)
	require.Len(t, order.Parts, 1)
	assert.Equal(t, 3, order.Parts[0].Quantity, "part quantity saturates at stock")
	pub.AssertExpectations(t)
}

func TestService_SubmitOrder_NoServices(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitOrder(ctx, SubmitOrderCommand{
		ClientID:  "c1",
		VehicleID: "v1",
		Parts:     []LineCommand{{CatalogID: "p1", Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrNoServices)
	pub.AssertNotCalled(t, "PublishWorkOrder", mock.Anything, mock.Anything)
}

func TestService_SubmitOrder_ZeroStockPartDropped(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	pub.On("PublishWorkOrder", ctx, mock.Anything).Return(nil)

	order, err := svc.SubmitOrder(ctx, SubmitOrderCommand{
		ClientID:  "c1",
		VehicleID: "v1",
		Services:  []LineCommand{{CatalogID: "s1", Quantity: 1}},
		Parts:     []LineCommand{{CatalogID: "p2", Quantity: 1}}, // stock 0
	})

	require.NoError(t, err)
	assert.Empty(t, order.Parts)
}

func TestService_SubmitOrder_UnknownCatalogEntry(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderCommand{
		ClientID:  "c1",
		VehicleID: "v1",
		Services:  []LineCommand{{CatalogID: "ghost", Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestService_SubmitOrder_PublishError(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	pub.On("PublishWorkOrder", ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := svc.SubmitOrder(ctx, SubmitOrderCommand{
		ClientID:  "c1",
		VehicleID: "v1",
		Services:  []LineCommand{{CatalogID: "s1", Quantity: 1}},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "publish work order")
}

func TestService_HandleConsumedOrder_PersistsAndMoves(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	order := &domain.WorkOrder{
		ID:        "os-001",
		ClientID:  "c1",
		VehicleID: "v1",
		Services:  []domain.ServiceLine{{ServiceID: "s1", Name: "Troca de óleo", Quantity: 1, UnitPrice: 80}},
		Parts:     []domain.PartLine{{PartID: "p1", Name: "Óleo motor 5W30", Quantity: 2, UnitPrice: 45, StockCeiling: 3}},
		LaborCost: 0,
		Total:     170,
		Status:    domain.StatusOpen,
	}

	require.NoError(t, svc.HandleConsumedOrder(ctx, order))

	saved, err := store.WorkOrders().FindByID(ctx, "os-001")
	require.NoError(t, err)
	require.NotNil(t, saved)

	part, err := store.Catalog().FindPartByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, part.Stock, "stock decremented by consumed quantity")

	moves, err := store.Movements().ListByPart(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, catalog.MovementOut, moves[0].Type)
	assert.Equal(t, "os-001", moves[0].WorkOrderID)
}

func TestService_GetOrder_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetOrder(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.WorkOrders().Save(ctx, &domain.WorkOrder{
		ID: "os-002", ClientID: "c1", VehicleID: "v1", Status: domain.StatusOpen,
	}))

	updated, err := svc.UpdateStatus(ctx, "os-002", domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	_, err = svc.UpdateStatus(ctx, "os-002", domain.Status("Atrasada"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
