package repository

import (
	"context"

	"oficina/internal/domain/workorder"
)

// WorkOrderFilter narrows ListWorkOrders. Search matches order id, client
// id or vehicle id as a substring; empty fields are ignored.
type WorkOrderFilter struct {
	Search string
	Status workorder.Status
}

type WorkOrderRepository interface {
	Save(ctx context.Context, order *workorder.WorkOrder) error
	FindByID(ctx context.Context, id string) (*workorder.WorkOrder, error)
	List(ctx context.Context, filter WorkOrderFilter) ([]*workorder.WorkOrder, error)
}
