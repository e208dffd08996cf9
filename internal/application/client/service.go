package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "oficina/internal/domain/client"
	"oficina/internal/domain/repository"
)

var ErrClientNotFound = errors.New("client not found")

type Service struct {
	clients repository.ClientRepository
}

func NewService(clients repository.ClientRepository) *Service {
	return &Service{clients: clients}
}

type RegisterClientCommand struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

func (s *Service) Register(ctx context.Context, cmd RegisterClientCommand) (*domain.Client, error) {
	c, err := domain.NewClient(uuid.NewString(), cmd.Name, cmd.Document, cmd.Phone)
	if err != nil {
		return nil, err
	}
	c.Email = cmd.Email
	c.Address = cmd.Address
	if err := s.clients.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Client, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	if c == nil {
		return nil, ErrClientNotFound
	}
	return c, nil
}

// Search matches name or document substrings, the clients page behavior.
func (s *Service) Search(ctx context.Context, term string) ([]*domain.Client, error) {
	return s.clients.List(ctx, term)
}
