package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/domain/catalog"
	"oficina/internal/domain/repository"
	"oficina/internal/domain/workorder"
)

func TestWorkOrderRepo_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.WorkOrders()

	o := &workorder.WorkOrder{
		ID:       "os-001",
		ClientID: "c1",
		VehicleID: "v1",
		Services: []workorder.ServiceLine{{ServiceID: "s1", Name: "Troca de óleo", Quantity: 1, UnitPrice: 80}},
		Status:   workorder.StatusOpen,
		Total:    80,
	}
	require.NoError(t, repo.Save(ctx, o))

	got, err := repo.FindByID(ctx, "os-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ClientID)

	// returned copy must not alias the stored order
	got.Services[0].Quantity = 42
	again, err := repo.FindByID(ctx, "os-001")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Services[0].Quantity)
}

func TestWorkOrderRepo_FindByID_Missing(t *testing.T) {
	store := NewStore()

	got, err := store.WorkOrders().FindByID(context.Background(), "nope")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWorkOrderRepo_List_Filter(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().WorkOrders()

	orders := []*workorder.WorkOrder{
		{ID: "os-001", ClientID: "c1", VehicleID: "v1", Status: workorder.StatusOpen},
		{ID: "os-002", ClientID: "c2", VehicleID: "v2", Status: workorder.StatusCompleted},
		{ID: "os-003", ClientID: "c1", VehicleID: "v3", Status: workorder.StatusCompleted},
	}
	for _, o := range orders {
		require.NoError(t, repo.Save(ctx, o))
	}

	byStatus, err := repo.List(ctx, repository.WorkOrderFilter{Status: workorder.StatusCompleted})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	bySearch, err := repo.List(ctx, repository.WorkOrderFilter{Search: "c1"})
	require.NoError(t, err)
	assert.Len(t, bySearch, 2)

	both, err := repo.List(ctx, repository.WorkOrderFilter{Search: "c1", Status: workorder.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "os-003", both[0].ID)
}

func TestCatalogRepo_ListParts_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Catalog()

	require.NoError(t, repo.SavePart(ctx, &catalog.Part{ID: "p1", Code: "OLE001", Name: "Óleo motor 5W30", Stock: 15}))
	require.NoError(t, repo.SavePart(ctx, &catalog.Part{ID: "p2", Code: "FRE001", Name: "Pastilhas de freio", Stock: 3}))

	byName, err := repo.ListParts(ctx, "freio")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "p2", byName[0].ID)

	byCode, err := repo.ListParts(ctx, "OLE")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "p1", byCode[0].ID)
}

func TestMovementRepo_ListByPart(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Movements()

	require.NoError(t, repo.Save(ctx, &catalog.StockMovement{ID: "m1", PartID: "p1", Type: catalog.MovementIn, Quantity: 5}))
	require.NoError(t, repo.Save(ctx, &catalog.StockMovement{ID: "m2", PartID: "p2", Type: catalog.MovementOut, Quantity: 1}))

	got, err := repo.ListByPart(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
}
