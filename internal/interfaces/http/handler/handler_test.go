package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogapp "oficina/internal/application/catalog"
	clientapp "oficina/internal/application/client"
	financeapp "oficina/internal/application/finance"
	vehicleapp "oficina/internal/application/vehicle"
	workorderapp "oficina/internal/application/workorder"
	"oficina/internal/domain/catalog"
	"oficina/internal/infrastructure/persistence/memory"
	"oficina/internal/interfaces/http/handler"
	"oficina/internal/interfaces/http/router"
	"oficina/pkg/logger"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWorkOrder(ctx context.Context, payload []byte) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store, *MockPublisher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	ctx := context.Background()

	oilChange := &catalog.Service{ID: "s1", Name: "Troca de óleo", Price: 80}
	engineOil := &catalog.Part{ID: "p1", Code: "OIL-5W30", Name: "Óleo motor 5W30", Price: 45, Stock: 3, MinStock: 2}
	require.NoError(t, store.Catalog().SaveService(ctx, oilChange))
	require.NoError(t, store.Catalog().SavePart(ctx, engineOil))

	publisher := new(MockPublisher)
	log := logger.NewNop()

	orderSvc := workorderapp.NewService(store.WorkOrders(), store.Catalog(), store.Movements(), publisher, log)
	catalogSvc := catalogapp.NewService(store.Catalog(), store.Movements(), log)
	clientSvc := clientapp.NewService(store.Clients())
	vehicleSvc := vehicleapp.NewService(store.Vehicles(), store.Clients())
	financeSvc := financeapp.NewService(store.Transactions())

	engine := gin.New()
	router.RegisterRoutes(engine, router.Handlers{
		WorkOrders: handler.NewWorkOrderHandler(orderSvc),
		Catalog:    handler.NewCatalogHandler(catalogSvc),
		Clients:    handler.NewClientHandler(clientSvc),
		Vehicles:   handler.NewVehicleHandler(vehicleSvc),
		Finance:    handler.NewFinanceHandler(financeSvc),
		Health:     handler.NewHealthHandler(nil),
	})
	return engine, store, publisher
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestWorkOrderHandler_SubmitOrder(t *testing.T) {
	engine, _, publisher := newTestRouter(t)
	publisher.On("PublishWorkOrder", mock.Anything, mock.Anything).Return(nil)

	rec := doJSON(t, engine, http.MethodPost, "/api/orders", gin.H{
		"client_id":  "c1",
		"vehicle_id": "v1",
		"services":   []gin.H{{"catalog_id": "s1", "quantity": 1}},
		"parts":      []gin.H{{"catalog_id": "p1", "quantity": 2}},
		"labor_cost": 50,
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, 220.0, body["total"])
	publisher.AssertExpectations(t)
}

func TestWorkOrderHandler_SubmitOrder_NoServices(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/orders", gin.H{
		"client_id":  "c1",
		"vehicle_id": "v1",
		"parts":      []gin.H{{"catalog_id": "p1", "quantity": 1}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkOrderHandler_GetOrder_NotFound(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/orders/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkOrderHandler_UpdateStatus_Invalid(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPatch, "/api/orders/os-1/status", gin.H{
		"status": "atrasada",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_CreateAndListParts(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/parts", gin.H{
		"code":      "FLT-001",
		"name":      "Filtro de óleo",
		"price":     25,
		"stock":     1,
		"min_stock": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/parts/critical", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
}

func TestCatalogHandler_RegisterMovement_UnknownPart(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/movements", gin.H{
		"part_id":  "missing",
		"type":     "in",
		"quantity": 5,
		"reason":   "compra",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientHandler_Register_InvalidDocument(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/clients", gin.H{
		"name":     "João Silva",
		"document": "123",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleHandler_Register_UnknownClient(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/vehicles", gin.H{
		"client_id": "missing",
		"plate":     "ABC1234",
		"model":     "Gol",
		"year":      2020,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFinanceHandler_RegisterAndSummary(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/transactions", gin.H{
		"type":     "income",
		"category": "Serviços",
		"amount":   390,
		"date":     "2026-08-15T12:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/reports/summary?ref=2026-08-01T00:00:00Z", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		Income float64 `json:"Income"`
		Net    float64 `json:"Net"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 390.0, summary.Income)
	assert.Equal(t, 390.0, summary.Net)
}

func TestHealthHandler_NoDatabase(t *testing.T) {
	engine, _, _ := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "skipped")
}
