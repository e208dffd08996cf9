package client

import (
	"errors"
	"time"

	"oficina/pkg/brdoc"
)

var (
	ErrMissingField    = errors.New("required field is missing")
	ErrInvalidDocument = errors.New("document must be a valid CPF or CNPJ")
	ErrInvalidPhone    = errors.New("phone number format is invalid")
)

// Client is a shop customer identified by a CPF or CNPJ document.
type Client struct {
	ID        string
	Name      string
	Document  string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}

// NewClient normalizes document and phone through the brdoc masks before
// validating, so callers may pass raw digits.
func NewClient(id, name, document, phone string) (*Client, error) {
	if id == "" || name == "" {
		return nil, ErrMissingField
	}
	document = brdoc.FormatDocument(document)
	if !brdoc.ValidDocument(document) {
		return nil, ErrInvalidDocument
	}
	phone = brdoc.FormatPhone(phone)
	if !brdoc.ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}
	return &Client{
		ID:        id,
		Name:      name,
		Document:  document,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}, nil
}
