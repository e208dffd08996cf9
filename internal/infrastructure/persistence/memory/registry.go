package memory

import (
	"context"

	"oficina/internal/domain/client"
	"oficina/internal/domain/vehicle"
)

type ClientRepo struct {
	s *Store
}

func (r *ClientRepo) Save(ctx context.Context, c *client.Client) error {
	if c == nil {
		return ErrNilEntity
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; !ok {
		r.s.clientIDs = append(r.s.clientIDs, c.ID)
	}
	r.s.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) FindByID(ctx context.Context, id string) (*client.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

func (r *ClientRepo) List(ctx context.Context, search string) ([]*client.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*client.Client, 0, len(r.s.clientIDs))
	for _, id := range r.s.clientIDs {
		c := r.s.clients[id]
		if search != "" && !containsFold(c.Name, search) && !containsFold(c.Document, search) {
			continue
		}
		cp := c
		out = append(out, &cp)
	}
	return out, nil
}

type VehicleRepo struct {
	s *Store
}

func (r *VehicleRepo) Save(ctx context.Context, v *vehicle.Vehicle) error {
	if v == nil {
		return ErrNilEntity
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.vehicles[v.ID]; !ok {
		r.s.vehicleIDs = append(r.s.vehicleIDs, v.ID)
	}
	r.s.vehicles[v.ID] = *v
	return nil
}

func (r *VehicleRepo) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := v
	return &cp, nil
}

func (r *VehicleRepo) ListByClient(ctx context.Context, clientID, search string) ([]*vehicle.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*vehicle.Vehicle, 0)
	for _, id := range r.s.vehicleIDs {
		v := r.s.vehicles[id]
		if v.ClientID != clientID {
			continue
		}
		if search != "" && !containsFold(v.Plate, search) && !containsFold(v.Model, search) {
			continue
		}
		cp := v
		out = append(out, &cp)
	}
	return out, nil
}
