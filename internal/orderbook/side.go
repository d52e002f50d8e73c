package orderbook

import "sort"

// bookSide indexes the resting Levels for one market side. prices is kept
// sorted so the best price is always prices[0]: descending for bids
// (highest price first), ascending for asks (lowest price first).
type bookSide struct {
	side   Side
	levels map[Price]*Level
	prices []Price
}

func newBookSide(side Side) *bookSide {
	return &bookSide{
		side:   side,
		levels: make(map[Price]*Level),
	}
}

// better reports whether a is a more aggressive resting price than b on
// this side: higher for bids, lower for asks.
func (bs *bookSide) better(a, b Price) bool {
	if bs.side == Buy {
		return a > b
	}
	return a < b
}

// getOrCreate returns the Level at price, inserting it into the sorted
// price index if it did not already exist.
func (bs *bookSide) getOrCreate(price Price) *Level {
	if lvl, ok := bs.levels[price]; ok {
		return lvl
	}

	lvl := newLevel(price)
	bs.levels[price] = lvl

	// prices is sorted by "better first"; find the insertion point with
	// a binary search instead of re-sorting the whole slice on insert.
	idx := sort.Search(len(bs.prices), func(i int) bool {
		return bs.better(price, bs.prices[i]) || price == bs.prices[i]
	})
	bs.prices = append(bs.prices, 0)
	copy(bs.prices[idx+1:], bs.prices[idx:])
	bs.prices[idx] = price

	return lvl
}

// remove drops an emptied level from the index.
func (bs *bookSide) remove(price Price) {
	lvl, ok := bs.levels[price]
	if !ok {
		return
	}
	if !lvl.empty() {
		invariantViolation("removed non-empty level from side index")
	}
	delete(bs.levels, price)

	idx := sort.Search(len(bs.prices), func(i int) bool {
		return bs.better(price, bs.prices[i]) || price == bs.prices[i]
	})
	if idx >= len(bs.prices) || bs.prices[idx] != price {
		invariantViolation("price missing from side index")
	}
	bs.prices = append(bs.prices[:idx], bs.prices[idx+1:]...)
}

// best returns the most aggressive resting Level, or nil if the side is
// empty.
func (bs *bookSide) best() *Level {
	if len(bs.prices) == 0 {
		return nil
	}
	return bs.levels[bs.prices[0]]
}

