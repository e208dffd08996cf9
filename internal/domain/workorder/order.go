package workorder

import "time"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// WorkOrder is a persisted service order: the submitted composition plus
// its header fields.
type WorkOrder struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"client_id"`
	VehicleID    string        `json:"vehicle_id"`
	Services     []ServiceLine `json:"services"`
	Parts        []PartLine    `json:"parts"`
	Observations string        `json:"observations"`
	LaborCost    float64       `json:"labor_cost"`
	Discount     float64       `json:"discount"`
	Total        float64       `json:"total"`
	Status       Status        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewWorkOrder builds a work order from a submitted payload. At least one
// service line is required, the rule the order form surfaces as
// "at least one service must be selected".
func NewWorkOrder(id string, p *Payload) (*WorkOrder, error) {
	if p == nil {
		return nil, ErrPayloadNil
	}
	if id == "" || p.ClientID == "" || p.VehicleID == "" {
		return nil, ErrMissingField
	}
	if len(p.Services) == 0 {
		return nil, ErrNoServices
	}
	if p.LaborCost < 0 || p.Discount < 0 {
		return nil, ErrInvalidAmount
	}
	status := p.Status
	if status == "" {
		status = StatusOpen
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	now := time.Now().UTC()
	return &WorkOrder{
		ID:           id,
		ClientID:     p.ClientID,
		VehicleID:    p.VehicleID,
		Services:     append([]ServiceLine(nil), p.Services...),
		Parts:        append([]PartLine(nil), p.Parts...),
		Observations: p.Observations,
		LaborCost:    p.LaborCost,
		Discount:     p.Discount,
		Total:        p.Total,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// RecomputeTotal derives the total from the stored lines and adjustments.
func (o *WorkOrder) RecomputeTotal() float64 {
	var sum float64
	for _, l := range o.Services {
		sum += l.Subtotal()
	}
	for _, l := range o.Parts {
		sum += l.Subtotal()
	}
	return sum + o.LaborCost - o.Discount
}

// ValidateInvariants returns every broken invariant instead of stopping at
// the first, so callers can log the full picture.
func (o *WorkOrder) ValidateInvariants() []error {
	var errs []error
	if o.ClientID == "" || o.VehicleID == "" {
		errs = append(errs, ErrMissingField)
	}
	if len(o.Services) == 0 {
		errs = append(errs, ErrNoServices)
	}
	for _, l := range o.Services {
		if l.Quantity < 1 {
			errs = append(errs, ErrLineQuantityInvalid)
		}
	}
	for _, l := range o.Parts {
		if l.Quantity < 1 || l.Quantity > l.StockCeiling {
			errs = append(errs, ErrLineQuantityInvalid)
		}
	}
	if !ValidStatus(o.Status) {
		errs = append(errs, ErrInvalidStatus)
	}
	if o.Total != o.RecomputeTotal() {
		errs = append(errs, ErrTotalMismatch)
	}
	return errs
}
