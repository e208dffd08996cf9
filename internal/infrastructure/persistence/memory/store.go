// Package memory keeps every repository in process-local maps. It backs
// the unit tests and the dev mode where no Postgres is available.
package memory

import (
	"errors"
	"strings"
	"sync"

	"oficina/internal/domain/catalog"
	"oficina/internal/domain/client"
	"oficina/internal/domain/finance"
	"oficina/internal/domain/repository"
	"oficina/internal/domain/vehicle"
	"oficina/internal/domain/workorder"
)

var ErrNilEntity = errors.New("entity is nil")

// Store is the shared in-memory state. The per-aggregate repositories
// returned by its accessors all lock the same mutex, values are copied on
// the way in and out so callers never share memory with the store.
type Store struct {
	mu sync.RWMutex

	orders     map[string]workorder.WorkOrder
	orderIDs   []string
	services   map[string]catalog.Service
	serviceIDs []string
	parts      map[string]catalog.Part
	partIDs    []string
	movements  []catalog.StockMovement
	clients    map[string]client.Client
	clientIDs  []string
	vehicles   map[string]vehicle.Vehicle
	vehicleIDs []string
	txs        []finance.Transaction
}

func NewStore() *Store {
	return &Store{
		orders:   make(map[string]workorder.WorkOrder),
		services: make(map[string]catalog.Service),
		parts:    make(map[string]catalog.Part),
		clients:  make(map[string]client.Client),
		vehicles: make(map[string]vehicle.Vehicle),
	}
}

func (s *Store) WorkOrders() *WorkOrderRepo     { return &WorkOrderRepo{s: s} }
func (s *Store) Catalog() *CatalogRepo          { return &CatalogRepo{s: s} }
func (s *Store) Movements() *MovementRepo       { return &MovementRepo{s: s} }
func (s *Store) Clients() *ClientRepo           { return &ClientRepo{s: s} }
func (s *Store) Vehicles() *VehicleRepo         { return &VehicleRepo{s: s} }
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s: s} }

var (
	_ repository.WorkOrderRepository   = (*WorkOrderRepo)(nil)
	_ repository.CatalogRepository     = (*CatalogRepo)(nil)
	_ repository.MovementRepository    = (*MovementRepo)(nil)
	_ repository.ClientRepository      = (*ClientRepo)(nil)
	_ repository.VehicleRepository     = (*VehicleRepo)(nil)
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
