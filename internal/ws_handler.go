package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/moura95/clob-engine/internal/engine"
	"github.com/moura95/clob-engine/internal/orderbook"
	"github.com/moura95/clob-engine/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// tradeSubscriber is one WS client's inbox for a symbol's trade stream.
type tradeSubscriber struct {
	ch chan orderbook.Trade
}

// bookSubscriber is one WS client's inbox for a symbol's book-snapshot
// stream.
type bookSubscriber struct {
	ch chan orderbook.Snapshot
}

// wsGateway fans out engine events to WebSocket clients, one subscriber
// set per symbol per stream, created lazily on first subscriber. It
// learns about new events entirely through engine.OnTrade/OnBookUpdate —
// it never touches the book directly except to take a Snapshot for
// /ws/book. mu guards both subscriber maps: serveTrades/serveBook add or
// remove subscribers from whatever HTTP request goroutine handles the
// upgrade, while OnTrade/OnBookUpdate broadcast from whatever goroutine
// is inside Engine.Submit/Amend at the time, so the maps are shared
// mutable state across arbitrarily many goroutines.
type wsGateway struct {
	engine *engine.Engine

	mu        sync.RWMutex
	tradeSubs map[string]map[*tradeSubscriber]struct{}
	bookSubs  map[string]map[*bookSubscriber]struct{}
}

func newWSGateway(eng *engine.Engine) *wsGateway {
	g := &wsGateway{
		engine:    eng,
		tradeSubs: make(map[string]map[*tradeSubscriber]struct{}),
		bookSubs:  make(map[string]map[*bookSubscriber]struct{}),
	}

	eng.OnTrade(func(symbol string, trade orderbook.Trade) {
		g.broadcastTrade(symbol, trade)
	})
	eng.OnBookUpdate(func(symbol string) {
		snap, err := eng.Snapshot(symbol)
		if err != nil {
			return
		}
		g.broadcastBook(symbol, snap)
	})

	return g
}

func (g *wsGateway) subscribeTrades(symbol string, buffer int) *tradeSubscriber {
	sub := &tradeSubscriber{ch: make(chan orderbook.Trade, buffer)}

	g.mu.Lock()
	defer g.mu.Unlock()
	subs, ok := g.tradeSubs[symbol]
	if !ok {
		subs = make(map[*tradeSubscriber]struct{})
		g.tradeSubs[symbol] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

func (g *wsGateway) unsubscribeTrades(symbol string, sub *tradeSubscriber) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.tradeSubs[symbol], sub)
	close(sub.ch)
}

func (g *wsGateway) broadcastTrade(symbol string, trade orderbook.Trade) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for sub := range g.tradeSubs[symbol] {
		select {
		case sub.ch <- trade:
		default:
		}
	}
}

func (g *wsGateway) subscribeBook(symbol string, buffer int) *bookSubscriber {
	sub := &bookSubscriber{ch: make(chan orderbook.Snapshot, buffer)}

	g.mu.Lock()
	defer g.mu.Unlock()
	subs, ok := g.bookSubs[symbol]
	if !ok {
		subs = make(map[*bookSubscriber]struct{})
		g.bookSubs[symbol] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

func (g *wsGateway) unsubscribeBook(symbol string, sub *bookSubscriber) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.bookSubs[symbol], sub)
	close(sub.ch)
}

func (g *wsGateway) broadcastBook(symbol string, snap orderbook.Snapshot) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for sub := range g.bookSubs[symbol] {
		select {
		case sub.ch <- snap:
		default:
		}
	}
}

// serveTrades godoc
// @Summary Trade stream
// @Description Streams executed trades for a symbol over a WebSocket
// @Tags Streaming
// @Param symbol query string true "Instrument symbol"
// @Router /ws/trades [get]
func (g *wsGateway) serveTrades(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		http.Error(w, "symbol query parameter is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warningf("ws trades upgrade failed: %v", err)
		return
	}

	sub := g.subscribeTrades(symbol, 64)
	go pumpTrades(conn, g, symbol, sub)
}

// serveBook godoc
// @Summary Order book stream
// @Description Streams order book snapshots for a symbol over a WebSocket
// @Tags Streaming
// @Param symbol query string true "Instrument symbol"
// @Router /ws/book [get]
func (g *wsGateway) serveBook(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		http.Error(w, "symbol query parameter is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warningf("ws book upgrade failed: %v", err)
		return
	}

	sub := g.subscribeBook(symbol, 16)

	if snap, err := g.engine.Snapshot(symbol); err == nil {
		sub.ch <- snap
	}

	go pumpBook(conn, g, symbol, sub)
}

func pumpTrades(conn *websocket.Conn, g *wsGateway, symbol string, sub *tradeSubscriber) {
	defer conn.Close()
	defer g.unsubscribeTrades(symbol, sub)

	for trade := range sub.ch {
		if err := conn.WriteJSON(trade); err != nil {
			return
		}
	}
}

func pumpBook(conn *websocket.Conn, g *wsGateway, symbol string, sub *bookSubscriber) {
	defer conn.Close()
	defer g.unsubscribeBook(symbol, sub)

	for snap := range sub.ch {
		if err := conn.WriteJSON(snap); err != nil {
			return
		}
	}
}
