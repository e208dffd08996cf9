package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "oficina/internal/domain/catalog"
	"oficina/internal/domain/repository"
	"oficina/pkg/logger"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrPartNotFound    = errors.New("part not found")
)

type Service struct {
	catalog   repository.CatalogRepository
	movements repository.MovementRepository
	log       logger.Logger
}

func NewService(cat repository.CatalogRepository, movements repository.MovementRepository, log logger.Logger) *Service {
	return &Service{catalog: cat, movements: movements, log: log}
}

type CreateServiceCommand struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type CreatePartCommand struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"min_stock"`
	Supplier string  `json:"supplier"`
}

type MovementCommand struct {
	PartID      string `json:"part_id"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
	WorkOrderID string `json:"work_order_id"`
}

func (s *Service) CreateService(ctx context.Context, cmd CreateServiceCommand) (*domain.Service, error) {
	svc, err := domain.NewService(uuid.NewString(), cmd.Name, cmd.Price)
	if err != nil {
		return nil, err
	}
	svc.Description = cmd.Description
	svc.DurationMin = cmd.DurationMin
	if err := s.catalog.SaveService(ctx, svc); err != nil {
		return nil, fmt.Errorf("save service: %w", err)
	}
	return svc, nil
}

func (s *Service) CreatePart(ctx context.Context, cmd CreatePartCommand) (*domain.Part, error) {
	part, err := domain.NewPart(uuid.NewString(), cmd.Code, cmd.Name, cmd.Price, cmd.Stock, cmd.MinStock)
	if err != nil {
		return nil, err
	}
	part.Supplier = cmd.Supplier
	if err := s.catalog.SavePart(ctx, part); err != nil {
		return nil, fmt.Errorf("save part: %w", err)
	}
	return part, nil
}

// UpdateService replaces a service's editable fields, the catalog form's
// edit mode.
func (s *Service) UpdateService(ctx context.Context, id string, cmd CreateServiceCommand) (*domain.Service, error) {
	svc, err := s.catalog.FindServiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	updated, err := domain.NewService(svc.ID, cmd.Name, cmd.Price)
	if err != nil {
		return nil, err
	}
	updated.Description = cmd.Description
	updated.DurationMin = cmd.DurationMin
	updated.CreatedAt = svc.CreatedAt

	if err := s.catalog.SaveService(ctx, updated); err != nil {
		return nil, fmt.Errorf("save service: %w", err)
	}
	return updated, nil
}

// UpdatePart replaces a part's editable fields. Stock is not editable
// here: it only changes through movements, keeping the audit trail intact.
func (s *Service) UpdatePart(ctx context.Context, id string, cmd CreatePartCommand) (*domain.Part, error) {
	part, err := s.catalog.FindPartByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load part: %w", err)
	}
	if part == nil {
		return nil, ErrPartNotFound
	}

	updated, err := domain.NewPart(part.ID, cmd.Code, cmd.Name, cmd.Price, part.Stock, cmd.MinStock)
	if err != nil {
		return nil, err
	}
	updated.Supplier = cmd.Supplier
	updated.CreatedAt = part.CreatedAt

	if err := s.catalog.SavePart(ctx, updated); err != nil {
		return nil, fmt.Errorf("save part: %w", err)
	}
	return updated, nil
}

func (s *Service) ListServices(ctx context.Context, search string) ([]*domain.Service, error) {
	return s.catalog.ListServices(ctx, search)
}

func (s *Service) ListParts(ctx context.Context, search string) ([]*domain.Part, error) {
	return s.catalog.ListParts(ctx, search)
}

// CriticalStock lists parts at or below their minimum stock level, the
// inventory page's warning panel.
func (s *Service) CriticalStock(ctx context.Context) ([]*domain.Part, error) {
	parts, err := s.catalog.ListParts(ctx, "")
	if err != nil {
		return nil, err
	}
	critical := make([]*domain.Part, 0)
	for _, p := range parts {
		if p.Critical() {
			critical = append(critical, p)
		}
	}
	return critical, nil
}

// RegisterMovement books a manual stock movement. "in" raises the part's
// stock; "out" may not take it below zero.
func (s *Service) RegisterMovement(ctx context.Context, cmd MovementCommand) (*domain.StockMovement, error) {
	part, err := s.catalog.FindPartByID(ctx, cmd.PartID)
	if err != nil {
		return nil, fmt.Errorf("load part: %w", err)
	}
	if part == nil {
		return nil, ErrPartNotFound
	}

	mv, err := domain.NewStockMovement(uuid.NewString(), cmd.PartID, domain.MovementType(cmd.Type), cmd.Quantity, cmd.Reason)
	if err != nil {
		return nil, err
	}
	mv.WorkOrderID = cmd.WorkOrderID

	switch mv.Type {
	case domain.MovementIn:
		part.Stock += mv.Quantity
	case domain.MovementOut:
		if part.Stock < mv.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		part.Stock -= mv.Quantity
	}

	if err := s.movements.Save(ctx, mv); err != nil {
		return nil, fmt.Errorf("save movement: %w", err)
	}
	if err := s.catalog.SavePart(ctx, part); err != nil {
		return nil, fmt.Errorf("update part stock: %w", err)
	}

	s.log.WithContext(ctx).Info("stock movement registered",
		logger.String("part_id", part.ID),
		logger.String("type", string(mv.Type)),
		logger.Int("quantity", mv.Quantity),
		logger.Int("stock", part.Stock),
	)
	return mv, nil
}

func (s *Service) ListMovements(ctx context.Context, partID string) ([]*domain.StockMovement, error) {
	if partID != "" {
		return s.movements.ListByPart(ctx, partID)
	}
	return s.movements.List(ctx)
}
