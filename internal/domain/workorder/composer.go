package workorder

import "oficina/internal/domain/catalog"

// ServiceLine is a selected catalog service with a quantity. Name and unit
// price are copied at selection time so later catalog edits do not change
// an open order.
type ServiceLine struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PartLine is a selected catalog part with a quantity. StockCeiling is the
// part's stock at selection time and caps the quantity for the whole
// composition.
type PartLine struct {
	PartID       string  `json:"part_id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	StockCeiling int     `json:"stock_ceiling"`
}

func (l ServiceLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

func (l PartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

type CompositionState string

const (
	StateEmpty      CompositionState = "empty"
	StateInProgress CompositionState = "in_progress"
	StateSubmitted  CompositionState = "submitted"
	StateCancelled  CompositionState = "cancelled"
)

// Composer holds the working set of lines for one work order being put
// together. All mutation goes through its methods so the invariants stay
// in one place: one line per catalog id, service quantities >= 1, part
// quantities within [1, stock ceiling]. Invalid requests are no-ops, the
// host UI is expected to disable the offending control anyway.
//
// Not safe for concurrent use; each open order owns its own Composer.
type Composer struct {
	services []ServiceLine
	parts    []PartLine
	state    CompositionState
}

func NewComposer() *Composer {
	return &Composer{state: StateEmpty}
}

// NewComposerFromLines seeds a composer from persisted lines, as when an
// existing order is opened for editing. The slices are copied.
func NewComposerFromLines(services []ServiceLine, parts []PartLine) *Composer {
	c := &Composer{
		services: append([]ServiceLine(nil), services...),
		parts:    append([]PartLine(nil), parts...),
		state:    StateEmpty,
	}
	if len(c.services) > 0 || len(c.parts) > 0 {
		c.state = StateInProgress
	}
	return c
}

func (c *Composer) State() CompositionState {
	return c.state
}

func (c *Composer) closed() bool {
	return c.state == StateSubmitted || c.state == StateCancelled
}

// AddService appends a line with quantity 1 for the given catalog service.
// Re-adding an already selected service is a no-op.
func (c *Composer) AddService(entry catalog.Service) {
	if c.closed() {
		return
	}
	if c.findService(entry.ID) >= 0 {
		return
	}
	c.services = append(c.services, ServiceLine{
		ServiceID: entry.ID,
		Name:      entry.Name,
		Quantity:  1,
		UnitPrice: entry.Price,
	})
	c.state = StateInProgress
}

// RemoveService deletes the line for the given service id regardless of
// its quantity. Unknown ids are ignored.
func (c *Composer) RemoveService(serviceID string) {
	if c.closed() {
		return
	}
	if i := c.findService(serviceID); i >= 0 {
		c.services = append(c.services[:i], c.services[i+1:]...)
	}
}

// SetServiceQuantity updates a service line in place. Requests below 1 are
// rejected and leave the quantity unchanged; dropping a line is an explicit
// RemoveService, never a side effect of decrementing. Services have no
// upper bound.
func (c *Composer) SetServiceQuantity(serviceID string, quantity int) {
	if c.closed() || quantity < 1 {
		return
	}
	if i := c.findService(serviceID); i >= 0 {
		c.services[i].Quantity = quantity
	}
}

// AddPart appends a line with quantity 1, copying price and stock ceiling
// from the catalog entry. Parts with no stock are never addable; duplicates
// are ignored.
func (c *Composer) AddPart(entry catalog.Part) {
	if c.closed() {
		return
	}
	if entry.Stock <= 0 {
		return
	}
	if c.findPart(entry.ID) >= 0 {
		return
	}
	c.parts = append(c.parts, PartLine{
		PartID:       entry.ID,
		Name:         entry.Name,
		Quantity:     1,
		UnitPrice:    entry.Price,
		StockCeiling: entry.Stock,
	})
	c.state = StateInProgress
}

func (c *Composer) RemovePart(partID string) {
	if c.closed() {
		return
	}
	if i := c.findPart(partID); i >= 0 {
		c.parts = append(c.parts[:i], c.parts[i+1:]...)
	}
}

// SetPartQuantity updates a part line in place. Requests below 1 are
// rejected like service lines, but requests above the stock ceiling
// saturate at the ceiling instead of failing: the upper bound is a physical
// constraint the composer enforces transparently.
func (c *Composer) SetPartQuantity(partID string, quantity int) {
	if c.closed() || quantity < 1 {
		return
	}
	if i := c.findPart(partID); i >= 0 {
		if quantity > c.parts[i].StockCeiling {
			quantity = c.parts[i].StockCeiling
		}
		c.parts[i].Quantity = quantity
	}
}

// ServiceLines returns the current service lines in selection order.
func (c *Composer) ServiceLines() []ServiceLine {
	return append([]ServiceLine(nil), c.services...)
}

// PartLines returns the current part lines in selection order.
func (c *Composer) PartLines() []PartLine {
	return append([]PartLine(nil), c.parts...)
}

// Total computes the order total from the current lines plus the two
// scalar adjustments owned by the host form. Pure; a discount larger than
// the subtotal yields a negative total, which is passed through as-is.
func (c *Composer) Total(laborCost, discount float64) float64 {
	var sum float64
	for _, l := range c.services {
		sum += l.Subtotal()
	}
	for _, l := range c.parts {
		sum += l.Subtotal()
	}
	return sum + laborCost - discount
}

// Header carries the form fields that live outside the composer and are
// only supplied at submission time.
type Header struct {
	ClientID     string
	VehicleID    string
	Observations string
	Status       Status
	LaborCost    float64
	Discount     float64
}

// Payload is the immutable snapshot handed to persistence on submission.
type Payload struct {
	ClientID     string        `json:"client_id"`
	VehicleID    string        `json:"vehicle_id"`
	Services     []ServiceLine `json:"services"`
	Parts        []PartLine    `json:"parts"`
	Observations string        `json:"observations"`
	LaborCost    float64       `json:"labor_cost"`
	Discount     float64       `json:"discount"`
	Total        float64       `json:"total"`
	Status       Status        `json:"status"`
}

// Submit snapshots the composition into a Payload and closes it. The lines
// are copied so the payload stays valid if the composer is reused or reset
// by the caller. Submitting a closed composition fails.
func (c *Composer) Submit(h Header) (*Payload, error) {
	if c.closed() {
		return nil, ErrCompositionClosed
	}
	p := &Payload{
		ClientID:     h.ClientID,
		VehicleID:    h.VehicleID,
		Services:     append([]ServiceLine(nil), c.services...),
		Parts:        append([]PartLine(nil), c.parts...),
		Observations: h.Observations,
		LaborCost:    h.LaborCost,
		Discount:     h.Discount,
		Total:        c.Total(h.LaborCost, h.Discount),
		Status:       h.Status,
	}
	c.state = StateSubmitted
	return p, nil
}

// Cancel discards the composition. Idempotent once closed.
func (c *Composer) Cancel() {
	if c.closed() {
		return
	}
	c.state = StateCancelled
}

func (c *Composer) findService(serviceID string) int {
	for i, l := range c.services {
		if l.ServiceID == serviceID {
			return i
		}
	}
	return -1
}

func (c *Composer) findPart(partID string) int {
	for i, l := range c.parts {
		if l.PartID == partID {
			return i
		}
	}
	return -1
}
