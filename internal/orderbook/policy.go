package orderbook

// fokFillable implements the FOK preflight: walking the opposite side in
// price-priority order, the sum of Remaining over all Levels marketable
// against price must reach quantity before the next Level stops being
// marketable. A looser "is the best opposite price crossable" check is
// insufficient — it admits FOK orders that could rest partially filled —
// so this always performs the full sum.
func fokFillable(opposite *bookSide, price Price, quantity Quantity) bool {
	var sum Quantity

	for _, p := range opposite.prices {
		if !marketable(opposite.side, p, price) {
			break
		}
		sum += opposite.levels[p].Volume
		if sum >= quantity {
			return true
		}
	}

	return false
}

// marketable reports whether a resting level at restingPrice on side
// would trade against an incoming order limited at incomingPrice.
func marketable(side Side, restingPrice, incomingPrice Price) bool {
	if side == Buy {
		// incoming SELL crosses resting bids priced at or above its limit
		return restingPrice >= incomingPrice
	}
	// incoming BUY crosses resting asks priced at or below its limit
	return restingPrice <= incomingPrice
}
