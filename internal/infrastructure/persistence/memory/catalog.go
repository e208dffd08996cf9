package memory

import (
	"context"

	"oficina/internal/domain/catalog"
)

type CatalogRepo struct {
	s *Store
}

func (r *CatalogRepo) SaveService(ctx context.Context, svc *catalog.Service) error {
	if svc == nil {
		return ErrNilEntity
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.services[svc.ID]; !ok {
		r.s.serviceIDs = append(r.s.serviceIDs, svc.ID)
	}
	r.s.services[svc.ID] = *svc
	return nil
}

func (r *CatalogRepo) FindServiceByID(ctx context.Context, id string) (*catalog.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	svc, ok := r.s.services[id]
	if !ok {
		return nil, nil
	}
	cp := svc
	return &cp, nil
}

func (r *CatalogRepo) ListServices(ctx context.Context, search string) ([]*catalog.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*catalog.Service, 0, len(r.s.serviceIDs))
	for _, id := range r.s.serviceIDs {
		svc := r.s.services[id]
		if search != "" && !containsFold(svc.Name, search) {
			continue
		}
		cp := svc
		out = append(out, &cp)
	}
	return out, nil
}

func (r *CatalogRepo) SavePart(ctx context.Context, part *catalog.Part) error {
	if part == nil {
		return ErrNilEntity
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parts[part.ID]; !ok {
		r.s.partIDs = append(r.s.partIDs, part.ID)
	}
	r.s.parts[part.ID] = *part
	return nil
}

func (r *CatalogRepo) FindPartByID(ctx context.Context, id string) (*catalog.Part, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	part, ok := r.s.parts[id]
	if !ok {
		return nil, nil
	}
	cp := part
	return &cp, nil
}

func (r *CatalogRepo) ListParts(ctx context.Context, search string) ([]*catalog.Part, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*catalog.Part, 0, len(r.s.partIDs))
	for _, id := range r.s.partIDs {
		part := r.s.parts[id]
		if search != "" && !containsFold(part.Name, search) && !containsFold(part.Code, search) {
			continue
		}
		cp := part
		out = append(out, &cp)
	}
	return out, nil
}

type MovementRepo struct {
	s *Store
}

func (r *MovementRepo) Save(ctx context.Context, mv *catalog.StockMovement) error {
	if mv == nil {
		return ErrNilEntity
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append(r.s.movements, *mv)
	return nil
}

func (r *MovementRepo) ListByPart(ctx context.Context, partID string) ([]*catalog.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*catalog.StockMovement, 0)
	for i := range r.s.movements {
		if r.s.movements[i].PartID != partID {
			continue
		}
		cp := r.s.movements[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MovementRepo) List(ctx context.Context) ([]*catalog.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*catalog.StockMovement, 0, len(r.s.movements))
	for i := range r.s.movements {
		cp := r.s.movements[i]
		out = append(out, &cp)
	}
	return out, nil
}
