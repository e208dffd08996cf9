package workorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"oficina/internal/domain/catalog"
	"oficina/internal/domain/repository"
	domain "oficina/internal/domain/workorder"
	"oficina/pkg/logger"
)

var (
	ErrUnknownService = errors.New("service is not in the catalog")
	ErrUnknownPart    = errors.New("part is not in the catalog")
	ErrOrderNotFound  = errors.New("work order not found")
)

type Publisher interface {
	PublishWorkOrder(ctx context.Context, payload []byte) error
}

type Service struct {
	orders    repository.WorkOrderRepository
	catalog   repository.CatalogRepository
	movements repository.MovementRepository
	publisher Publisher
	log       logger.Logger
}

func NewService(
	orders repository.WorkOrderRepository,
	cat repository.CatalogRepository,
	movements repository.MovementRepository,
	publisher Publisher,
	log logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		catalog:   cat,
		movements: movements,
		publisher: publisher,
		log:       log,
	}
}

// LineCommand selects one catalog entry with a requested quantity.
type LineCommand struct {
	CatalogID string `json:"catalog_id"`
	Quantity  int    `json:"quantity"`
}

type SubmitOrderCommand struct {
	ClientID     string        `json:"client_id"`
	VehicleID    string        `json:"vehicle_id"`
	Services     []LineCommand `json:"services"`
	Parts        []LineCommand `json:"parts"`
	Observations string        `json:"observations"`
	LaborCost    float64       `json:"labor_cost"`
	Discount     float64       `json:"discount"`
	Status       domain.Status `json:"status"`
}

// SubmitOrder replays the command's selections through a fresh composer,
// validates the resulting order and pushes it to Kafka (write-only path,
// persistence happens on the consumer side).
func (s *Service) SubmitOrder(ctx context.Context, cmd SubmitOrderCommand) (*domain.WorkOrder, error) {
	composer, err := s.compose(ctx, cmd)
	if err != nil {
		return nil, err
	}

	payload, err := composer.Submit(domain.Header{
		ClientID:     cmd.ClientID,
		VehicleID:    cmd.VehicleID,
		Observations: cmd.Observations,
		Status:       cmd.Status,
		LaborCost:    cmd.LaborCost,
		Discount:     cmd.Discount,
	})
	if err != nil {
		return nil, err
	}

	order, err := domain.NewWorkOrder(uuid.NewString(), payload)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode work order: %w", err)
	}

	if err := s.publisher.PublishWorkOrder(ctx, data); err != nil {
		return nil, fmt.Errorf("publish work order: %w", err)
	}

	s.log.WithContext(ctx).Info("work order submitted",
		logger.String("order_id", order.ID),
		logger.Float64("total", order.Total),
	)
	return order, nil
}

// compose resolves catalog ids and replays the selections. The composer's
// own rules apply on top: duplicates collapse, part quantities saturate at
// the stock ceiling.
func (s *Service) compose(ctx context.Context, cmd SubmitOrderCommand) (*domain.Composer, error) {
	composer := domain.NewComposer()

	for _, line := range cmd.Services {
		entry, err := s.catalog.FindServiceByID(ctx, line.CatalogID)
		if err != nil {
			return nil, fmt.Errorf("load service %s: %w", line.CatalogID, err)
		}
		if entry == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownService, line.CatalogID)
		}
		composer.AddService(*entry)
		if line.Quantity > 1 {
			composer.SetServiceQuantity(entry.ID, line.Quantity)
		}
	}

	for _, line := range cmd.Parts {
		entry, err := s.catalog.FindPartByID(ctx, line.CatalogID)
		if err != nil {
			return nil, fmt.Errorf("load part %s: %w", line.CatalogID, err)
		}
		if entry == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPart, line.CatalogID)
		}
		composer.AddPart(*entry)
		if line.Quantity > 1 {
			composer.SetPartQuantity(entry.ID, line.Quantity)
		}
	}

	return composer, nil
}

// HandleConsumedOrder persists an order read back from Kafka and books the
// matching stock movements for its part lines.
func (s *Service) HandleConsumedOrder(ctx context.Context, order *domain.WorkOrder) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		for _, e := range errs {
			s.log.Warn("consumed order breaks invariant",
				logger.String("order_id", order.ID),
				logger.Error(e),
			)
		}
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return fmt.Errorf("save work order: %w", err)
	}

	for _, line := range order.Parts {
		if err := s.consumePart(ctx, order.ID, line); err != nil {
			return err
		}
	}
	return nil
}

// consumePart books an "out" movement and decrements catalog stock.
// Missing parts are logged, not fatal, the order itself is already saved.
func (s *Service) consumePart(ctx context.Context, orderID string, line domain.PartLine) error {
	part, err := s.catalog.FindPartByID(ctx, line.PartID)
	if err != nil {
		return fmt.Errorf("load part %s: %w", line.PartID, err)
	}
	if part == nil {
		s.log.Warn("part line references unknown part",
			logger.String("order_id", orderID),
			logger.String("part_id", line.PartID),
		)
		return nil
	}

	mv, err := catalog.NewStockMovement(uuid.NewString(), part.ID, catalog.MovementOut, line.Quantity, "consumed by work order")
	if err != nil {
		return fmt.Errorf("build movement: %w", err)
	}
	mv.WorkOrderID = orderID
	if err := s.movements.Save(ctx, mv); err != nil {
		return fmt.Errorf("save movement: %w", err)
	}

	part.Stock -= line.Quantity
	if part.Stock < 0 {
		// stock snapshot was stale, floor it instead of going negative
		part.Stock = 0
	}
	if err := s.catalog.SavePart(ctx, part); err != nil {
		return fmt.Errorf("update part stock: %w", err)
	}
	return nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.WorkOrder, error) {
	if id == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find work order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, search string, status domain.Status) ([]*domain.WorkOrder, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.orders.List(ctx, repository.WorkOrderFilter{Search: search, Status: status})
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.WorkOrder, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Status = status
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save work order: %w", err)
	}
	return order, nil
}
