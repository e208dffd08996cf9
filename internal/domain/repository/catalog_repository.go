package repository

import (
	"context"

	"oficina/internal/domain/catalog"
)

type CatalogRepository interface {
	SaveService(ctx context.Context, svc *catalog.Service) error
	FindServiceByID(ctx context.Context, id string) (*catalog.Service, error)
	ListServices(ctx context.Context, search string) ([]*catalog.Service, error)

	SavePart(ctx context.Context, part *catalog.Part) error
	FindPartByID(ctx context.Context, id string) (*catalog.Part, error)
	ListParts(ctx context.Context, search string) ([]*catalog.Part, error)
}

type MovementRepository interface {
	Save(ctx context.Context, mv *catalog.StockMovement) error
	ListByPart(ctx context.Context, partID string) ([]*catalog.StockMovement, error)
	List(ctx context.Context) ([]*catalog.StockMovement, error)
}
