package orderbook

import (
	"container/list"
	"fmt"
)

// Order is a resting or incoming limit order. Price and Quantity never
// change after construction except through Amend, which is implemented
// by the book as cancel-then-resubmit and therefore always produces a
// fresh Order value.
type Order struct {
	OID         OrderID
	Side        Side
	TimeInForce TimeInForce
	Price       Price
	Quantity    Quantity // original quantity at submission
	Remaining   Quantity // quantity still unfilled

	elem *list.Element // handle into the Level's FIFO queue, nil until resting
}

// NewOrder validates and constructs an Order. It does not touch a book;
// Book.Submit is the only path that inserts an Order into the resting
// state.
func NewOrder(oid OrderID, side Side, tif TimeInForce, price Price, quantity Quantity) (*Order, error) {
	if side != Buy && side != Sell {
		return nil, errInvalidSide
	}
	if tif != GTC && tif != FOK {
		return nil, errInvalidTimeInForce
	}
	if price <= 0 {
		return nil, errInvalidPrice
	}
	if quantity == 0 {
		return nil, errInvalidQuantity
	}

	return &Order{
		OID:         oid,
		Side:        side,
		TimeInForce: tif,
		Price:       price,
		Quantity:    quantity,
		Remaining:   quantity,
	}, nil
}

// IsFilled reports whether the order has no quantity left to trade.
func (o *Order) IsFilled() bool {
	return o.Remaining == 0
}

// fill reduces Remaining by size, which must never exceed Remaining.
func (o *Order) fill(size Quantity) {
	if size > o.Remaining {
		invariantViolation("fill size exceeds remaining quantity")
	}
	o.Remaining -= size
}

func (o *Order) String() string {
	return fmt.Sprintf("[OID:%d %s %s %d@%d remaining:%d]",
		o.OID, o.Side, o.TimeInForce, o.Quantity, o.Price, o.Remaining)
}
