package orderbook

// PriceLevel is one row of a Snapshot: a price and the total remaining
// quantity resting at it.
type PriceLevel struct {
	Price    Price
	Quantity Quantity
}

// Snapshot is a read-only aggregation of the book: bid levels in
// descending price order, ask levels in ascending price order. Empty
// Levels never appear, per invariant 2. Snapshot never mutates book
// state.
type Snapshot struct {
	Bids []PriceLevel
	Asks []PriceLevel
}

// Snapshot produces a point-in-time aggregated view of the book.
func (b *Book) Snapshot() Snapshot {
	return Snapshot{
		Bids: aggregate(b.bids),
		Asks: aggregate(b.asks),
	}
}

func aggregate(side *bookSide) []PriceLevel {
	levels := make([]PriceLevel, 0, len(side.prices))
	for _, p := range side.prices {
		lvl := side.levels[p]
		levels = append(levels, PriceLevel{Price: lvl.Price, Quantity: lvl.Volume})
	}
	return levels
}
