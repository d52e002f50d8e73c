package utils

import "github.com/moura95/clob-engine/internal/orderbook"

// IsValidTick reports whether price is an exact multiple of tick. A tick
// of 0 disables the check (any price is valid), matching the source's
// float-tick convention of treating a zero tick as "unconstrained".
func IsValidTick(price orderbook.Price, tick orderbook.Price) bool {
	if tick == 0 {
		return true
	}
	return price%tick == 0
}

// RoundToTick rounds price down to the nearest multiple of tick. A tick
// of 0 is a no-op.
func RoundToTick(price orderbook.Price, tick orderbook.Price) orderbook.Price {
	if tick == 0 {
		return price
	}
	rem := price % tick
	if rem == 0 {
		return price
	}
	if price > 0 {
		return price - rem
	}
	return price - rem - tick
}
