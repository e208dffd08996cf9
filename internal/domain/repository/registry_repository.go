package repository

import (
	"context"

	"oficina/internal/domain/client"
	"oficina/internal/domain/vehicle"
)

type ClientRepository interface {
	Save(ctx context.Context, c *client.Client) error
	FindByID(ctx context.Context, id string) (*client.Client, error)
	// List matches name or document as a substring; empty returns all.
	List(ctx context.Context, search string) ([]*client.Client, error)
}

type VehicleRepository interface {
	Save(ctx context.Context, v *vehicle.Vehicle) error
	FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error)
	// ListByClient matches plate or model as a substring within one
	// client's vehicles.
	ListByClient(ctx context.Context, clientID, search string) ([]*vehicle.Vehicle, error)
}
