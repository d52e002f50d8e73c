package v1

import (
	"time"

	"github.com/moura95/clob-engine/internal/orderbook"
)

// PlaceOrderRequest submits a new order for Symbol.
type PlaceOrderRequest struct {
	Symbol      string                `json:"symbol"`
	OrderID     orderbook.OrderID     `json:"order_id"`
	Side        orderbook.Side        `json:"side"`
	TimeInForce orderbook.TimeInForce `json:"time_in_force"`
	Price       orderbook.Price       `json:"price"`
	Quantity    orderbook.Quantity    `json:"quantity"`
}

// AmendOrderRequest replaces a resting order's side/price/quantity while
// preserving its original time-in-force.
type AmendOrderRequest struct {
	Symbol   string             `json:"symbol"`
	OrderID  orderbook.OrderID  `json:"order_id"`
	Side     orderbook.Side     `json:"side"`
	Price    orderbook.Price    `json:"price"`
	Quantity orderbook.Quantity `json:"quantity"`
}

// CancelOrderRequest cancels a resting order. Cancelling an order that is
// not resting is a no-op, mirroring the core.
type CancelOrderRequest struct {
	Symbol  string            `json:"symbol"`
	OrderID orderbook.OrderID `json:"order_id"`
}

// TradeResponse is the wire form of orderbook.Trade.
type TradeResponse struct {
	BidOrderID orderbook.OrderID  `json:"bid_order_id"`
	BidPrice   orderbook.Price    `json:"bid_price"`
	AskOrderID orderbook.OrderID  `json:"ask_order_id"`
	AskPrice   orderbook.Price    `json:"ask_price"`
	Quantity   orderbook.Quantity `json:"quantity"`
	Sequence   uint64             `json:"sequence"`
	ExecutedAt time.Time          `json:"executed_at"`
}

// SubmitResponse is returned by both order placement and amendment: the
// (possibly empty) list of trades the call produced.
type SubmitResponse struct {
	Symbol string          `json:"symbol"`
	Trades []TradeResponse `json:"trades"`
}

// TradesToResponse converts core trades to their wire form.
func TradesToResponse(trades []orderbook.Trade) []TradeResponse {
	out := make([]TradeResponse, len(trades))
	for i, tr := range trades {
		out[i] = TradeResponse{
			BidOrderID: tr.BidOID,
			BidPrice:   tr.BidPrice,
			AskOrderID: tr.AskOID,
			AskPrice:   tr.AskPrice,
			Quantity:   tr.Quantity,
			Sequence:   tr.Sequence,
			ExecutedAt: tr.ExecutedAt,
		}
	}
	return out
}
