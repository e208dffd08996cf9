package suppliersync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"oficina/internal/domain/catalog"
	"oficina/internal/domain/repository"
	"oficina/internal/infrastructure/http/supplier"
	"oficina/pkg/logger"
)

// PriceFetcher abstracts the supplier client so the sync logic can be tested
// without HTTP.
type PriceFetcher interface {
	FetchPriceUpdates(ctx context.Context, updatedSince *time.Time) ([]supplier.PriceUpdate, error)
}

// Report summarises one sync run.
type Report struct {
	Fetched      int
	PriceChanges int
	Restocked    int
	Skipped      int
}

type Service struct {
	fetcher   PriceFetcher
	catalog   repository.CatalogRepository
	movements repository.MovementRepository
	logger    logger.Logger
}

func NewService(
	fetcher PriceFetcher,
	catalogRepo repository.CatalogRepository,
	movements repository.MovementRepository,
	log logger.Logger,
) *Service {
	return &Service{
		fetcher:   fetcher,
		catalog:   catalogRepo,
		movements: movements,
		logger:    log,
	}
}

// SyncIncremental pulls the supplier price list and applies it to the parts
// catalog. Price changes overwrite the unit price; delivered quantities raise
// stock and leave an "in" movement behind. Rows whose part code is unknown
// are counted and skipped, never created: new parts enter through the catalog
// API where a minimum stock gets set.
func (s *Service) SyncIncremental(ctx context.Context, updatedSince *time.Time) (*Report, error) {
	updates, err := s.fetcher.FetchPriceUpdates(ctx, updatedSince)
	if err != nil {
		return nil, fmt.Errorf("fetch price updates: %w", err)
	}

	report := &Report{Fetched: len(updates)}

	for _, update := range updates {
		if update.PartCode == "" {
			report.Skipped++
			continue
		}

		part, err := s.findByCode(ctx, update.PartCode)
		if err != nil {
			return report, fmt.Errorf("lookup part %s: %w", update.PartCode, err)
		}
		if part == nil {
			s.logger.Warn("price update for unknown part code",
				logger.String("part_code", update.PartCode),
			)
			report.Skipped++
			continue
		}

		changed := false

		if update.UnitPrice > 0 && update.UnitPrice != part.Price {
			part.Price = update.UnitPrice
			report.PriceChanges++
			changed = true
		}

		if update.Quantity > 0 {
			mv, err := catalog.NewStockMovement(
				uuid.NewString(),
				part.ID,
				catalog.MovementIn,
				update.Quantity,
				fmt.Sprintf("entrega fornecedor %s", update.Supplier),
			)
			if err != nil {
				return report, fmt.Errorf("record delivery for %s: %w", update.PartCode, err)
			}
			if err := s.movements.Save(ctx, mv); err != nil {
				return report, fmt.Errorf("save movement for %s: %w", update.PartCode, err)
			}
			part.Stock += update.Quantity
			report.Restocked++
			changed = true
		}

		if changed {
			if err := s.catalog.SavePart(ctx, part); err != nil {
				return report, fmt.Errorf("save part %s: %w", update.PartCode, err)
			}
		}
	}

	s.logger.Info("supplier sync finished",
		logger.Int("fetched", report.Fetched),
		logger.Int("price_changes", report.PriceChanges),
		logger.Int("restocked", report.Restocked),
		logger.Int("skipped", report.Skipped),
	)

	return report, nil
}

func (s *Service) findByCode(ctx context.Context, code string) (*catalog.Part, error) {
	parts, err := s.catalog.ListParts(ctx, code)
	if err != nil {
		return nil, err
	}
	for _, part := range parts {
		if part.Code == code {
			return part, nil
		}
	}
	return nil, nil
}
