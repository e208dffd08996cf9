package catalog

import "errors"

var (
	ErrMissingField        = errors.New("required field is missing")
	ErrInvalidPrice        = errors.New("price must not be negative")
	ErrInvalidStock        = errors.New("stock must not be negative")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrInvalidMovementType = errors.New("movement type must be in or out")
	ErrReasonRequired      = errors.New("movement reason is required")
	ErrInsufficientStock   = errors.New("not enough stock for movement")
)
