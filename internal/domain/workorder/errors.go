package workorder

import "errors"

var (
	ErrPayloadNil          = errors.New("payload is nil")
	ErrMissingField        = errors.New("required field is missing")
	ErrNoServices          = errors.New("at least one service must be selected")
	ErrInvalidAmount       = errors.New("labor cost and discount must not be negative")
	ErrInvalidStatus       = errors.New("unknown work order status")
	ErrLineQuantityInvalid = errors.New("line quantity out of range")
	ErrTotalMismatch       = errors.New("stored total does not match line totals")
	ErrCompositionClosed   = errors.New("composition already submitted or cancelled")
)
