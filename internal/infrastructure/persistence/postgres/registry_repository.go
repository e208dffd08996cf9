package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"oficina/internal/domain/client"
	"oficina/internal/domain/vehicle"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}

	const query = `
		INSERT INTO clients (id, name, document, phone, email, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			document = EXCLUDED.document,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address;
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Document,
		c.Phone,
		c.Email,
		c.Address,
		c.CreatedAt,
	)
	return err
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	const query = `
		SELECT id, name, document, phone, email, address, created_at
		FROM clients
		WHERE id = $1;
	`
	var c client.Client
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Document,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context, search string) ([]*client.Client, error) {
	const query = `
		SELECT id, name, document, phone, email, address, created_at
		FROM clients
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR document ILIKE '%' || $1 || '%'
		ORDER BY created_at;
	`

	rows, err := r.pool.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]*client.Client, 0)
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Document, &c.Phone, &c.Email, &c.Address, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS clients (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			document TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

func (r *VehicleRepository) Save(ctx context.Context, v *vehicle.Vehicle) error {
	if v == nil {
		return fmt.Errorf("vehicle is nil")
	}

	const query = `
		INSERT INTO vehicles (id, client_id, plate, brand, model, year, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET client_id = EXCLUDED.client_id,
			plate = EXCLUDED.plate,
			brand = EXCLUDED.brand,
			model = EXCLUDED.model,
			year = EXCLUDED.year,
			color = EXCLUDED.color;
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		v.ID,
		v.ClientID,
		v.Plate,
		v.Brand,
		v.Model,
		v.Year,
		v.Color,
		v.CreatedAt,
	)
	return err
}

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	const query = `
		SELECT id, client_id, plate, brand, model, year, color, created_at
		FROM vehicles
		WHERE id = $1;
	`
	var v vehicle.Vehicle
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.ClientID,
		&v.Plate,
		&v.Brand,
		&v.Model,
		&v.Year,
		&v.Color,
		&v.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) ListByClient(ctx context.Context, clientID, search string) ([]*vehicle.Vehicle, error) {
	const query = `
		SELECT id, client_id, plate, brand, model, year, color, created_at
		FROM vehicles
		WHERE ($1 = '' OR client_id = $1)
		  AND ($2 = '' OR plate ILIKE '%' || $2 || '%' OR model ILIKE '%' || $2 || '%')
		ORDER BY created_at;
	`

	rows, err := r.pool.Query(ctx, query, clientID, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]*vehicle.Vehicle, 0)
	for rows.Next() {
		var v vehicle.Vehicle
		if err := rows.Scan(&v.ID, &v.ClientID, &v.Plate, &v.Brand, &v.Model, &v.Year, &v.Color, &v.CreatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, rows.Err()
}

func (r *VehicleRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS vehicles (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			plate TEXT NOT NULL DEFAULT '',
			brand TEXT NOT NULL DEFAULT '',
			model TEXT NOT NULL,
			year INT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}
