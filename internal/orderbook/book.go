package orderbook

import (
	"container/list"
	"time"
)

// handle is the OrderIndex entry: everything needed to erase an order from
// its Level in O(1) without walking either BookSide.
type handle struct {
	elem  *list.Element
	side  Side
	price Price
}

// Book is the single-instrument core: price-sorted level indices on both
// sides, an order index for O(1) lookup, and the matching loop. Book
// performs no locking; it must not be called re-entrantly or
// concurrently. A multi-threaded frontend should guard every call with a
// single mutex (see internal/engine.Engine).
type Book struct {
	bids *bookSide
	asks *bookSide

	index map[OrderID]*handle

	sequence uint64
}

// NewBook constructs an empty book.
func NewBook() *Book {
	return &Book{
		bids:  newBookSide(Buy),
		asks:  newBookSide(Sell),
		index: make(map[OrderID]*handle),
	}
}

// Submit inserts order into the book and runs the matching engine.
//
// A structurally invalid order (bad side/TIF/price/quantity) is rejected
// with an error and never touches book state. A duplicate OID or an
// unfillable FOK order is a silent policy rejection: (nil, nil), book
// unchanged.
func (b *Book) Submit(oid OrderID, side Side, tif TimeInForce, price Price, quantity Quantity) ([]Trade, error) {
	order, err := NewOrder(oid, side, tif, price, quantity)
	if err != nil {
		return nil, err
	}

	if _, exists := b.index[oid]; exists {
		return nil, nil
	}

	if order.TimeInForce == FOK && !fokFillable(b.sideFor(oppositeSide(side)), price, quantity) {
		return nil, nil
	}

	b.rest(order)

	return b.match(), nil
}

// Cancel removes OID from the book if it is resting. A nonexistent OID is
// a silent no-op.
func (b *Book) Cancel(oid OrderID) {
	h, ok := b.index[oid]
	if !ok {
		return
	}
	b.erase(oid, h)
}

// Amend is cancel-and-reinsert preserving the original TimeInForce: the
// new order joins the tail of its (possibly new) Level, losing its
// original time priority. A nonexistent OID is a silent no-op. Invalid
// new parameters are rejected exactly as Submit rejects them.
func (b *Book) Amend(oid OrderID, side Side, price Price, quantity Quantity) ([]Trade, error) {
	h, ok := b.index[oid]
	if !ok {
		return nil, nil
	}
	tif := h.elem.Value.(*Order).TimeInForce

	b.erase(oid, h)

	return b.Submit(oid, side, tif, price, quantity)
}

// Size returns the number of currently resting orders across both sides.
func (b *Book) Size() int {
	n := 0
	for _, lvl := range b.bids.levels {
		n += lvl.orders.Len()
	}
	for _, lvl := range b.asks.levels {
		n += lvl.orders.Len()
	}
	return n
}

func (b *Book) sideFor(s Side) *bookSide {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

func oppositeSide(s Side) Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// rest inserts order at the tail of its Level and registers it in the
// order index. It does not run the matching engine.
func (b *Book) rest(o *Order) {
	side := b.sideFor(o.Side)
	lvl := side.getOrCreate(o.Price)
	elem := lvl.push(o)
	o.elem = elem
	b.index[o.OID] = &handle{elem: elem, side: o.Side, price: o.Price}
}

// erase removes the order named by h from its Level and the order index,
// deleting the Level if it becomes empty.
func (b *Book) erase(oid OrderID, h *handle) {
	side := b.sideFor(h.side)
	lvl, ok := side.levels[h.price]
	if !ok {
		invariantViolation("order index points at missing level")
	}
	lvl.erase(h.elem)
	if lvl.empty() {
		side.remove(h.price)
	}
	delete(b.index, oid)
}

// match runs the price-time priority crossing loop until the book is
// one-sided, the spread is non-negative, or a boundary order fills.
func (b *Book) match() []Trade {
	var trades []Trade

	for {
		bidLvl := b.bids.best()
		askLvl := b.asks.best()
		if bidLvl == nil || askLvl == nil {
			break
		}
		if bidLvl.Price < askLvl.Price {
			break
		}

		bidElem := bidLvl.front()
		askElem := askLvl.front()
		bidOrder := bidElem.Value.(*Order)
		askOrder := askElem.Value.(*Order)

		q := bidOrder.Remaining
		if askOrder.Remaining < q {
			q = askOrder.Remaining
		}

		bidOrder.fill(q)
		askOrder.fill(q)
		bidLvl.reduceVolume(q)
		askLvl.reduceVolume(q)

		b.sequence++
		trades = append(trades, Trade{
			BidOID:     bidOrder.OID,
			BidPrice:   bidOrder.Price,
			AskOID:     askOrder.OID,
			AskPrice:   askOrder.Price,
			Quantity:   q,
			Sequence:   b.sequence,
			ExecutedAt: time.Now(),
		})

		if bidOrder.IsFilled() {
			b.erase(bidOrder.OID, &handle{elem: bidElem, side: Buy, price: bidOrder.Price})
		}
		if askOrder.IsFilled() {
			b.erase(askOrder.OID, &handle{elem: askElem, side: Sell, price: askOrder.Price})
		}
	}

	return trades
}
