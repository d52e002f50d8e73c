package orderbook

import "time"

// Trade is one matching event. Both legs record each order's own limit
// price; they may differ when one side is the resting order and the other
// the aggressor. The core does not designate a single execution price —
// see spec design notes on "Open questions" — consumers pick a
// convention (typically the resting order's price).
type Trade struct {
	BidOID   OrderID
	BidPrice Price
	AskOID   OrderID
	AskPrice Price
	Quantity Quantity

	// Sequence and ExecutedAt carry no matching semantics; they exist so
	// ambient consumers (feed, logs) can order and timestamp trades.
	Sequence   uint64
	ExecutedAt time.Time
}
