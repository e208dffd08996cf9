package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"oficina/internal/domain/repository"
	domain "oficina/internal/domain/vehicle"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrUnknownClient   = errors.New("vehicle owner is not registered")
)

type Service struct {
	vehicles repository.VehicleRepository
	clients  repository.ClientRepository
}

func NewService(vehicles repository.VehicleRepository, clients repository.ClientRepository) *Service {
	return &Service{vehicles: vehicles, clients: clients}
}

type RegisterVehicleCommand struct {
	ClientID string `json:"client_id"`
	Plate    string `json:"plate"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Color    string `json:"color"`
}

func (s *Service) Register(ctx context.Context, cmd RegisterVehicleCommand) (*domain.Vehicle, error) {
	owner, err := s.clients.FindByID(ctx, cmd.ClientID)
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	if owner == nil {
		return nil, ErrUnknownClient
	}

	v, err := domain.NewVehicle(uuid.NewString(), cmd.ClientID, cmd.Plate, cmd.Brand, cmd.Model, cmd.Year)
	if err != nil {
		return nil, err
	}
	v.Color = cmd.Color
	if err := s.vehicles.Save(ctx, v); err != nil {
		return nil, fmt.Errorf("save vehicle: %w", err)
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if v == nil {
		return nil, ErrVehicleNotFound
	}
	return v, nil
}

// SearchByClient lists one client's vehicles, optionally narrowed by a
// plate or model substring. The order form only offers the selected
// client's vehicles.
func (s *Service) SearchByClient(ctx context.Context, clientID, term string) ([]*domain.Vehicle, error) {
	return s.vehicles.ListByClient(ctx, clientID, term)
}
