package catalog

import "time"

// Service is a labor offering from the shop catalog (oil change, alignment...).
type Service struct {
	ID          string
	Name        string
	Description string
	Price       float64
	DurationMin int
	CreatedAt   time.Time
}

// Part is a stocked inventory item. Stock is the currently available count,
// MinStock the threshold below which the part is flagged as critical.
type Part struct {
	ID        string
	Code      string
	Name      string
	Price     float64
	Stock     int
	MinStock  int
	Supplier  string
	CreatedAt time.Time
}

// Critical reports whether the part sits at or below its minimum stock level.
func (p Part) Critical() bool {
	return p.Stock <= p.MinStock
}

func NewService(id, name string, price float64) (*Service, error) {
	if id == "" || name == "" {
		return nil, ErrMissingField
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	return &Service{
		ID:        id,
		Name:      name,
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func NewPart(id, code, name string, price float64, stock, minStock int) (*Part, error) {
	if id == "" || name == "" {
		return nil, ErrMissingField
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 || minStock < 0 {
		return nil, ErrInvalidStock
	}
	return &Part{
		ID:        id,
		Code:      code,
		Name:      name,
		Price:     price,
		Stock:     stock,
		MinStock:  minStock,
		CreatedAt: time.Now().UTC(),
	}, nil
}
