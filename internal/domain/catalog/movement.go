package catalog

import "time"

type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// StockMovement records one inventory change, optionally tied to a work order.
type StockMovement struct {
	ID          string
	PartID      string
	Type        MovementType
	Quantity    int
	Reason      string
	WorkOrderID string
	CreatedAt   time.Time
}

func NewStockMovement(id, partID string, typ MovementType, quantity int, reason string) (*StockMovement, error) {
	if id == "" || partID == "" {
		return nil, ErrMissingField
	}
	if typ != MovementIn && typ != MovementOut {
		return nil, ErrInvalidMovementType
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if reason == "" {
		return nil, ErrReasonRequired
	}
	return &StockMovement{
		ID:        id,
		PartID:    partID,
		Type:      typ,
		Quantity:  quantity,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}, nil
}
