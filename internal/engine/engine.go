package engine

import (
	"sync"
	"time"

	"github.com/moura95/clob-engine/internal/orderbook"
	"github.com/moura95/clob-engine/pkg/feed"
	"github.com/moura95/clob-engine/pkg/logger"
	"github.com/moura95/clob-engine/pkg/metrics"
)

// Engine owns one orderbook.Book per instrument symbol and is the
// sanctioned concurrent frontend around the single-threaded core: every
// public method holds mu for the duration of the Book call it wraps.
// This is the "multi-instrument routing" external collaborator the core
// itself never references.
type Engine struct {
	mu     sync.RWMutex
	books  map[string]*orderbook.Book
	logger *logger.Logger
	feed   *feed.Publisher // optional, nil disables trade fan-out

	tradeObservers []func(symbol string, trade orderbook.Trade)
	bookObservers  []func(symbol string)
}

// OnTrade registers an additional synchronous observer invoked for every
// trade produced by Submit or Amend, after the feed publisher. Used by
// the WebSocket gateway to broadcast trades without the engine importing
// anything about HTTP or WS.
func (e *Engine) OnTrade(fn func(symbol string, trade orderbook.Trade)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tradeObservers = append(e.tradeObservers, fn)
}

// OnBookUpdate registers an observer invoked after any call that may
// have changed a book's resting orders (Submit, Amend, Cancel),
// regardless of whether it produced trades. The observer is expected to
// call Snapshot itself if it needs the resulting book state.
func (e *Engine) OnBookUpdate(fn func(symbol string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bookObservers = append(e.bookObservers, fn)
}

func (e *Engine) notifyBookUpdate(symbol string) {
	for _, obs := range e.bookObservers {
		obs(symbol)
	}
}

// NewEngine constructs an Engine. pub may be nil, in which case trades are
// not published anywhere beyond the caller's own return value.
func NewEngine(log *logger.Logger, pub *feed.Publisher) *Engine {
	if log == nil {
		log = logger.Default()
	}
	return &Engine{
		books:  make(map[string]*orderbook.Book),
		logger: log.Named("engine"),
		feed:   pub,
	}
}

func (e *Engine) bookFor(symbol string) *orderbook.Book {
	if b, ok := e.books[symbol]; ok {
		return b
	}
	b := orderbook.NewBook()
	e.books[symbol] = b
	return b
}

// Submit routes an order to symbol's book, creating the book on first
// use. See orderbook.Book.Submit for the core contract.
func (e *Engine) Submit(symbol string, oid orderbook.OrderID, side orderbook.Side, tif orderbook.TimeInForce, price orderbook.Price, quantity orderbook.Quantity) ([]orderbook.Trade, error) {
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}

	start := time.Now()

	e.mu.Lock()
	book := e.bookFor(symbol)
	trades, err := book.Submit(oid, side, tif, price, quantity)
	e.mu.Unlock()

	metrics.MatchDuration.WithLabelValues(symbol).Observe(time.Since(start).Seconds())
	metrics.OrdersSubmitted.WithLabelValues(symbol).Inc()

	if err != nil {
		metrics.OrdersRejected.WithLabelValues(symbol, metrics.ReasonInvalidParameter).Inc()
		e.logger.Warningf("submit rejected symbol=%s oid=%d: %v", symbol, oid, err)
		return nil, err
	}

	if trades == nil {
		reason := metrics.ReasonDuplicateOID
		if tif == orderbook.FOK {
			reason = metrics.ReasonFOKUnfillable
		}
		metrics.OrdersRejected.WithLabelValues(symbol, reason).Inc()
	}

	e.publishTrades(symbol, trades)
	e.notifyBookUpdate(symbol)
	return trades, nil
}

// Cancel routes a cancel to symbol's book. An unknown symbol or OID is a
// silent no-op, matching the core's own no-op semantics.
func (e *Engine) Cancel(symbol string, oid orderbook.OrderID) {
	e.mu.Lock()
	book, ok := e.books[symbol]
	if ok {
		book.Cancel(oid)
	}
	e.mu.Unlock()

	if ok {
		e.notifyBookUpdate(symbol)
	}
}

// Amend routes an amend to symbol's book.
func (e *Engine) Amend(symbol string, oid orderbook.OrderID, side orderbook.Side, price orderbook.Price, quantity orderbook.Quantity) ([]orderbook.Trade, error) {
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}

	e.mu.Lock()
	book, ok := e.books[symbol]
	if !ok {
		e.mu.Unlock()
		return nil, nil
	}
	trades, err := book.Amend(oid, side, price, quantity)
	e.mu.Unlock()

	if err != nil {
		e.logger.Warningf("amend rejected symbol=%s oid=%d: %v", symbol, oid, err)
		return nil, err
	}

	e.publishTrades(symbol, trades)
	e.notifyBookUpdate(symbol)
	return trades, nil
}

// Snapshot returns a read-only view of symbol's book. An unknown symbol
// yields an empty snapshot and ErrUnknownSymbol.
func (e *Engine) Snapshot(symbol string) (orderbook.Snapshot, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	book, ok := e.books[symbol]
	if !ok {
		return orderbook.Snapshot{}, ErrUnknownSymbol
	}
	return book.Snapshot(), nil
}

// Size returns the number of resting orders in symbol's book.
func (e *Engine) Size(symbol string) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	book, ok := e.books[symbol]
	if !ok {
		return 0, ErrUnknownSymbol
	}
	return book.Size(), nil
}

// Symbols lists every instrument that has had at least one order
// submitted to it.
func (e *Engine) Symbols() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	symbols := make([]string, 0, len(e.books))
	for s := range e.books {
		symbols = append(symbols, s)
	}
	return symbols
}

func (e *Engine) publishTrades(symbol string, trades []orderbook.Trade) {
	if len(trades) == 0 {
		return
	}
	metrics.Trades.WithLabelValues(symbol).Add(float64(len(trades)))

	for _, tr := range trades {
		if e.feed != nil {
			e.feed.Publish(symbol, tr)
		}
		for _, obs := range e.tradeObservers {
			obs(symbol, tr)
		}
	}
}
