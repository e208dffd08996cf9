package vehicle

import (
	"errors"
	"time"

	"oficina/pkg/brdoc"
)

var (
	ErrMissingField = errors.New("required field is missing")
	ErrInvalidPlate = errors.New("license plate format is invalid")
	ErrInvalidYear  = errors.New("vehicle year is out of range")
)

// Vehicle belongs to exactly one client and is identified by its plate.
type Vehicle struct {
	ID        string
	ClientID  string
	Plate     string
	Brand     string
	Model     string
	Year      int
	Color     string
	CreatedAt time.Time
}

// NewVehicle normalizes the plate through the brdoc mask before validating.
func NewVehicle(id, clientID, plate, brand, model string, year int) (*Vehicle, error) {
	if id == "" || clientID == "" || model == "" {
		return nil, ErrMissingField
	}
	plate = brdoc.FormatPlate(plate)
	if !brdoc.ValidPlate(plate) {
		return nil, ErrInvalidPlate
	}
	if year != 0 && (year < 1900 || year > time.Now().Year()+1) {
		return nil, ErrInvalidYear
	}
	return &Vehicle{
		ID:        id,
		ClientID:  clientID,
		Plate:     plate,
		Brand:     brand,
		Model:     model,
		Year:      year,
		CreatedAt: time.Now().UTC(),
	}, nil
}
