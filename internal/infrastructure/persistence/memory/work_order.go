package memory

import (
	"context"

	"oficina/internal/domain/repository"
	"oficina/internal/domain/workorder"
)

type WorkOrderRepo struct {
	s *Store
}

func (r *WorkOrderRepo) Save(ctx context.Context, order *workorder.WorkOrder) error {
	if order == nil {
		return ErrNilEntity
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[order.ID]; !ok {
		r.s.orderIDs = append(r.s.orderIDs, order.ID)
	}
	r.s.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *WorkOrderRepo) FindByID(ctx context.Context, id string) (*workorder.WorkOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := cloneOrder(o)
	return &cp, nil
}

func (r *WorkOrderRepo) List(ctx context.Context, filter repository.WorkOrderFilter) ([]*workorder.WorkOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*workorder.WorkOrder, 0, len(r.s.orderIDs))
	for _, id := range r.s.orderIDs {
		o := r.s.orders[id]
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Search != "" &&
			!containsFold(o.ID, filter.Search) &&
			!containsFold(o.ClientID, filter.Search) &&
			!containsFold(o.VehicleID, filter.Search) {
			continue
		}
		cp := cloneOrder(o)
		out = append(out, &cp)
	}
	return out, nil
}

// cloneOrder deep-copies the line slices, the map must never hand out
// shared backing arrays.
func cloneOrder(o workorder.WorkOrder) workorder.WorkOrder {
	o.Services = append([]workorder.ServiceLine(nil), o.Services...)
	o.Parts = append([]workorder.PartLine(nil), o.Parts...)
	return o
}
