package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	v1 "github.com/moura95/clob-engine/api/v1"
	"github.com/moura95/clob-engine/internal/engine"
	"github.com/moura95/clob-engine/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OrderHandler exposes order submission, amendment, and cancellation over
// HTTP. It carries no matching logic of its own: every request is a thin
// translation to an engine.Engine call, per spec for driver/gateway
// layers.
type OrderHandler struct {
	engine *engine.Engine
}

func NewOrderHandler(eng *engine.Engine) *OrderHandler {
	return &OrderHandler{engine: eng}
}

// PlaceOrder godoc
// @Summary Submit a new order
// @Description Submit a GTC or FOK limit order to an instrument's book
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body v1.PlaceOrderRequest true "Order details"
// @Success 200 {object} v1.SubmitResponse "Order processed"
// @Failure 400 {object} v1.ErrorResponse "Invalid request"
// @Router /api/v1/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req v1.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		logger.Warningf("place order: invalid JSON: %v", err)
		return
	}
	if req.Symbol == "" {
		h.sendError(w, "symbol is required", http.StatusBadRequest)
		return
	}

	trades, err := h.engine.Submit(req.Symbol, req.OrderID, req.Side, req.TimeInForce, req.Price, req.Quantity)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		logger.Warningf("place order failed symbol=%s oid=%d: %v", req.Symbol, req.OrderID, err)
		return
	}

	h.sendJSON(w, v1.SubmitResponse{Symbol: req.Symbol, Trades: v1.TradesToResponse(trades)}, http.StatusOK)
	logger.Infof("place order symbol=%s oid=%d trades=%d duration=%v", req.Symbol, req.OrderID, len(trades), time.Since(start))
}

// AmendOrder godoc
// @Summary Amend a resting order
// @Description Cancel and reinsert an order with new side/price/quantity, preserving its time-in-force
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body v1.AmendOrderRequest true "Amendment details"
// @Success 200 {object} v1.SubmitResponse "Order amended"
// @Failure 400 {object} v1.ErrorResponse "Invalid request"
// @Router /api/v1/orders/amend [post]
func (h *OrderHandler) AmendOrder(w http.ResponseWriter, r *http.Request) {
	var req v1.AmendOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Symbol == "" {
		h.sendError(w, "symbol is required", http.StatusBadRequest)
		return
	}

	trades, err := h.engine.Amend(req.Symbol, req.OrderID, req.Side, req.Price, req.Quantity)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		logger.Warningf("amend order failed symbol=%s oid=%d: %v", req.Symbol, req.OrderID, err)
		return
	}

	h.sendJSON(w, v1.SubmitResponse{Symbol: req.Symbol, Trades: v1.TradesToResponse(trades)}, http.StatusOK)
}

// CancelOrder godoc
// @Summary Cancel a resting order
// @Description Cancel an order by ID. Cancelling an order that is not resting is a no-op.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body v1.CancelOrderRequest true "Cancel order details"
// @Success 204 "Order cancelled or already absent"
// @Failure 400 {object} v1.ErrorResponse "Invalid request"
// @Router /api/v1/orders/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req v1.CancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Symbol == "" {
		h.sendError(w, "symbol is required", http.StatusBadRequest)
		return
	}

	h.engine.Cancel(req.Symbol, req.OrderID)
	w.WriteHeader(http.StatusNoContent)
	logger.Infof("cancel order symbol=%s oid=%d", req.Symbol, req.OrderID)
}

func (h *OrderHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorf("error encoding JSON response: %v", err)
	}
}

func (h *OrderHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, v1.ErrorResponse{Error: message}, statusCode)
}
