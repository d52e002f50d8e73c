package v1

import "github.com/moura95/clob-engine/internal/orderbook"

// LimitLevel is one aggregated price level in an OrderbookResponse.
type LimitLevel struct {
	Price    orderbook.Price    `json:"price"`
	Quantity orderbook.Quantity `json:"quantity"`
}

// OrderbookResponse is the wire form of orderbook.Snapshot for a symbol:
// bids descending by price, asks ascending, exactly as Book.Snapshot
// produces them.
type OrderbookResponse struct {
	Symbol string       `json:"symbol"`
	Bids   []LimitLevel `json:"bids"`
	Asks   []LimitLevel `json:"asks"`
}

// SnapshotToResponse converts a core snapshot to its wire form.
func SnapshotToResponse(symbol string, snap orderbook.Snapshot) OrderbookResponse {
	return OrderbookResponse{
		Symbol: symbol,
		Bids:   levelsToResponse(snap.Bids),
		Asks:   levelsToResponse(snap.Asks),
	}
}

func levelsToResponse(levels []orderbook.PriceLevel) []LimitLevel {
	out := make([]LimitLevel, len(levels))
	for i, lvl := range levels {
		out[i] = LimitLevel{Price: lvl.Price, Quantity: lvl.Quantity}
	}
	return out
}
