package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"oficina/internal/domain/repository"
	domain "oficina/internal/domain/workorder"
)

// WorkOrderRepository persists work orders with their line items as JSONB
// columns. Lines are immutable snapshots taken at submit time, so the
// document shape fits better than a normalized lines table.
type WorkOrderRepository struct {
	pool *pgxpool.Pool
}

func NewWorkOrderRepository(pool *pgxpool.Pool) *WorkOrderRepository {
	return &WorkOrderRepository{pool: pool}
}

func (r *WorkOrderRepository) Save(ctx context.Context, order *domain.WorkOrder) error {
	if order == nil {
		return fmt.Errorf("work order is nil")
	}

	services, err := json.Marshal(order.Services)
	if err != nil {
		return fmt.Errorf("marshal service lines: %w", err)
	}
	parts, err := json.Marshal(order.Parts)
	if err != nil {
		return fmt.Errorf("marshal part lines: %w", err)
	}

	const query = `
		INSERT INTO work_orders (id, client_id, vehicle_id, services, parts, observations, labor_cost, discount, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE
		SET client_id = EXCLUDED.client_id,
			vehicle_id = EXCLUDED.vehicle_id,
			services = EXCLUDED.services,
			parts = EXCLUDED.parts,
			observations = EXCLUDED.observations,
			labor_cost = EXCLUDED.labor_cost,
			discount = EXCLUDED.discount,
			total = EXCLUDED.total,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at;
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.ClientID,
		order.VehicleID,
		services,
		parts,
		order.Observations,
		order.LaborCost,
		order.Discount,
		order.Total,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	return err
}

func (r *WorkOrderRepository) FindByID(ctx context.Context, id string) (*domain.WorkOrder, error) {
	const query = `
		SELECT id, client_id, vehicle_id, services, parts, observations, labor_cost, discount, total, status, created_at, updated_at
		FROM work_orders
		WHERE id = $1;
	`
	row := r.pool.QueryRow(ctx, query, id)

	order, err := scanWorkOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *WorkOrderRepository) List(ctx context.Context, filter repository.WorkOrderFilter) ([]*domain.WorkOrder, error) {
	const query = `
		SELECT id, client_id, vehicle_id, services, parts, observations, labor_cost, discount, total, status, created_at, updated_at
		FROM work_orders
		WHERE ($1 = '' OR id ILIKE '%' || $1 || '%' OR client_id ILIKE '%' || $1 || '%' OR vehicle_id ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query, filter.Search, string(filter.Status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.WorkOrder, 0)
	for rows.Next() {
		order, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func scanWorkOrder(row pgx.Row) (*domain.WorkOrder, error) {
	var (
		o        domain.WorkOrder
		services []byte
		parts    []byte
	)

	err := row.Scan(
		&o.ID,
		&o.ClientID,
		&o.VehicleID,
		&services,
		&parts,
		&o.Observations,
		&o.LaborCost,
		&o.Discount,
		&o.Total,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(services, &o.Services); err != nil {
		return nil, fmt.Errorf("unmarshal service lines: %w", err)
	}
	if err := json.Unmarshal(parts, &o.Parts); err != nil {
		return nil, fmt.Errorf("unmarshal part lines: %w", err)
	}
	return &o, nil
}

func (r *WorkOrderRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS work_orders (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			vehicle_id TEXT NOT NULL,
			services JSONB NOT NULL,
			parts JSONB NOT NULL,
			observations TEXT NOT NULL DEFAULT '',
			labor_cost NUMERIC NOT NULL,
			discount NUMERIC NOT NULL,
			total NUMERIC NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}
