package service

import (
	"context"
	"errors"
)

// ErrCEPNotFound is returned when the postal service does not know the CEP.
var ErrCEPNotFound = errors.New("cep not found")

// PostalAddress is the address data resolved from a CEP.
type PostalAddress struct {
	CEP          string
	Street       string
	Neighborhood string
	City         string
	State        string
}

// PostalLookup resolves Brazilian postal codes to addresses.
type PostalLookup interface {
	// Lookup resolves an 8-digit CEP. Returns ErrCEPNotFound for unknown codes.
	Lookup(ctx context.Context, cep string) (*PostalAddress, error)
}
