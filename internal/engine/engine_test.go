package engine

import (
	"testing"

	"github.com/moura95/clob-engine/internal/orderbook"
)

func newTestEngine() *Engine {
	return NewEngine(nil, nil)
}

func TestEngine_RoutesToSeparateBooksPerSymbol(t *testing.T) {
	e := newTestEngine()

	if _, err := e.Submit("BTC-USD", 1, orderbook.Buy, orderbook.GTC, 100, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.Submit("ETH-USD", 1, orderbook.Buy, orderbook.GTC, 200, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	btcSize, err := e.Size("BTC-USD")
	if err != nil || btcSize != 1 {
		t.Fatalf("BTC-USD size = (%d, %v), want (1, nil)", btcSize, err)
	}
	ethSize, err := e.Size("ETH-USD")
	if err != nil || ethSize != 1 {
		t.Fatalf("ETH-USD size = (%d, %v), want (1, nil)", ethSize, err)
	}
}

func TestEngine_UnknownSymbol(t *testing.T) {
	e := newTestEngine()

	if _, err := e.Size("NOPE"); err != ErrUnknownSymbol {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
	if _, err := e.Snapshot("NOPE"); err != ErrUnknownSymbol {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestEngine_SubmitEmptySymbol(t *testing.T) {
	e := newTestEngine()

	if _, err := e.Submit("", 1, orderbook.Buy, orderbook.GTC, 100, 5); err != ErrInvalidSymbol {
		t.Fatalf("expected ErrInvalidSymbol, got %v", err)
	}
}

func TestEngine_MatchAcrossSubmits(t *testing.T) {
	e := newTestEngine()

	if _, err := e.Submit("BTC-USD", 1, orderbook.Buy, orderbook.GTC, 100, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trades, err := e.Submit("BTC-USD", 2, orderbook.Sell, orderbook.GTC, 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trades) != 1 {
		t.Fatalf("expected one trade, got %d", len(trades))
	}
}

func TestEngine_CancelUnknownSymbolIsNoop(t *testing.T) {
	e := newTestEngine()
	e.Cancel("NOPE", 1) // must not panic
}

func TestEngine_AmendUnknownSymbolIsNoop(t *testing.T) {
	e := newTestEngine()
	trades, err := e.Amend("NOPE", 1, orderbook.Buy, 100, 5)
	if err != nil || trades != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", trades, err)
	}
}
