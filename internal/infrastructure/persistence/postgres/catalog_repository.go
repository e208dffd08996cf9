package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"oficina/internal/domain/catalog"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) SaveService(ctx context.Context, svc *catalog.Service) error {
	if svc == nil {
		return fmt.Errorf("service is nil")
	}

	const query = `
		INSERT INTO services (id, name, description, price, duration_min, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			duration_min = EXCLUDED.duration_min;
	`

	if err := r.ensureServiceTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		svc.ID,
		svc.Name,
		svc.Description,
		svc.Price,
		svc.DurationMin,
		svc.CreatedAt,
	)
	return err
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id string) (*catalog.Service, error) {
	const query = `
		SELECT id, name, description, price, duration_min, created_at
		FROM services
		WHERE id = $1;
	`
	var s catalog.Service
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Price,
		&s.DurationMin,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogRepository) ListServices(ctx context.Context, search string) ([]*catalog.Service, error) {
	const query = `
		SELECT id, name, description, price, duration_min, created_at
		FROM services
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		ORDER BY created_at;
	`

	rows, err := r.pool.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]*catalog.Service, 0)
	for rows.Next() {
		var s catalog.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.DurationMin, &s.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

func (r *CatalogRepository) SavePart(ctx context.Context, part *catalog.Part) error {
	if part == nil {
		return fmt.Errorf("part is nil")
	}

	const query = `
		INSERT INTO parts (id, code, name, price, stock, min_stock, supplier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET code = EXCLUDED.code,
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			stock = EXCLUDED.stock,
			min_stock = EXCLUDED.min_stock,
			supplier = EXCLUDED.supplier;
	`

	if err := r.ensurePartTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		part.ID,
		part.Code,
		part.Name,
		part.Price,
		part.Stock,
		part.MinStock,
		part.Supplier,
		part.CreatedAt,
	)
	return err
}

func (r *CatalogRepository) FindPartByID(ctx context.Context, id string) (*catalog.Part, error) {
	const query = `
		SELECT id, code, name, price, stock, min_stock, supplier, created_at
		FROM parts
		WHERE id = $1;
	`
	var p catalog.Part
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Price,
		&p.Stock,
		&p.MinStock,
		&p.Supplier,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) ListParts(ctx context.Context, search string) ([]*catalog.Part, error) {
	const query = `
		SELECT id, code, name, price, stock, min_stock, supplier, created_at
		FROM parts
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%'
		ORDER BY created_at;
	`

	rows, err := r.pool.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := make([]*catalog.Part, 0)
	for rows.Next() {
		var p catalog.Part
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.Stock, &p.MinStock, &p.Supplier, &p.CreatedAt); err != nil {
			return nil, err
		}
		parts = append(parts, &p)
	}
	return parts, rows.Err()
}

func (r *CatalogRepository) ensureServiceTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS services (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC NOT NULL,
			duration_min INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}

func (r *CatalogRepository) ensurePartTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS parts (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			name TEXT NOT NULL,
			price NUMERIC NOT NULL,
			stock INT NOT NULL,
			min_stock INT NOT NULL,
			supplier TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}

// MovementRepository appends stock movements. Movements are never updated,
// so Save is a plain insert.
type MovementRepository struct {
	pool *pgxpool.Pool
}

func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

func (r *MovementRepository) Save(ctx context.Context, mv *catalog.StockMovement) error {
	if mv == nil {
		return fmt.Errorf("movement is nil")
	}

	const query = `
		INSERT INTO stock_movements (id, part_id, type, quantity, reason, work_order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		mv.ID,
		mv.PartID,
		mv.Type,
		mv.Quantity,
		mv.Reason,
		mv.WorkOrderID,
		mv.CreatedAt,
	)
	return err
}

func (r *MovementRepository) ListByPart(ctx context.Context, partID string) ([]*catalog.StockMovement, error) {
	const query = `
		SELECT id, part_id, type, quantity, reason, work_order_id, created_at
		FROM stock_movements
		WHERE part_id = $1
		ORDER BY created_at;
	`
	return r.queryMovements(ctx, query, partID)
}

func (r *MovementRepository) List(ctx context.Context) ([]*catalog.StockMovement, error) {
	const query = `
		SELECT id, part_id, type, quantity, reason, work_order_id, created_at
		FROM stock_movements
		ORDER BY created_at;
	`
	return r.queryMovements(ctx, query)
}

func (r *MovementRepository) queryMovements(ctx context.Context, query string, args ...interface{}) ([]*catalog.StockMovement, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]*catalog.StockMovement, 0)
	for rows.Next() {
		var mv catalog.StockMovement
		if err := rows.Scan(&mv.ID, &mv.PartID, &mv.Type, &mv.Quantity, &mv.Reason, &mv.WorkOrderID, &mv.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, &mv)
	}
	return movements, rows.Err()
}

func (r *MovementRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS stock_movements (
			id TEXT PRIMARY KEY,
			part_id TEXT NOT NULL,
			type TEXT NOT NULL,
			quantity INT NOT NULL,
			reason TEXT NOT NULL,
			work_order_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}
