package handler

import (
	"net/http"

	v1 "github.com/moura95/clob-engine/api/v1"
	"github.com/moura95/clob-engine/internal/engine"
	"github.com/moura95/clob-engine/pkg/logger"
)

// OrderbookHandler exposes read-only book snapshots over HTTP.
type OrderbookHandler struct {
	engine *engine.Engine
}

func NewOrderbookHandler(eng *engine.Engine) *OrderbookHandler {
	return &OrderbookHandler{engine: eng}
}

// GetOrderbook godoc
// @Summary Get a book snapshot
// @Description Get the aggregated bid/ask levels for an instrument
// @Tags Orderbook
// @Produce json
// @Param symbol query string true "Instrument symbol (e.g., BTC-USD)"
// @Success 200 {object} v1.OrderbookResponse "Snapshot retrieved"
// @Failure 400 {object} v1.ErrorResponse "Invalid request"
// @Failure 404 {object} v1.ErrorResponse "Unknown symbol"
// @Router /api/v1/orderbook [get]
func (h *OrderbookHandler) GetOrderbook(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		h.sendError(w, "symbol query parameter is required", http.StatusBadRequest)
		return
	}

	snap, err := h.engine.Snapshot(symbol)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusNotFound)
		return
	}

	h.sendJSON(w, v1.SnapshotToResponse(symbol, snap), http.StatusOK)
}

func (h *OrderbookHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorf("error encoding JSON response: %v", err)
	}
}

func (h *OrderbookHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, v1.ErrorResponse{Error: message}, statusCode)
}
