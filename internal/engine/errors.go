package engine

import "github.com/pkg/errors"

var (
	// ErrUnknownSymbol is returned when a caller references a symbol that
	// has never had an order submitted to it.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrInvalidSymbol is returned by Submit/Amend for a blank symbol.
	ErrInvalidSymbol = errors.New("symbol cannot be empty")
)
