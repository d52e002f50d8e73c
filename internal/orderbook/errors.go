package orderbook

import "github.com/pkg/errors"

var (
	errInvalidSide        = errors.New("invalid side")
	errInvalidTimeInForce = errors.New("invalid time-in-force")
	errInvalidPrice       = errors.New("price must be greater than 0")
	errInvalidQuantity    = errors.New("quantity must be greater than 0")
	errDuplicateOrderID   = errors.New("order id already resting in book")
)

// invariantViolation panics with a message identifying which internal
// invariant was found broken. It is never returned as an error value:
// callers cannot recover from a corrupted book, so the core simply stops.
func invariantViolation(msg string) {
	panic(errors.New("orderbook: invariant violation: " + msg))
}
