package orderbook

import "testing"

func mustSubmit(t *testing.T, b *Book, oid OrderID, side Side, tif TimeInForce, price Price, qty Quantity) []Trade {
	t.Helper()
	trades, err := b.Submit(oid, side, tif, price, qty)
	if err != nil {
		t.Fatalf("Submit(%d) unexpected error: %v", oid, err)
	}
	return trades
}

// S1 — simple cross, one trade.
func TestBook_SimpleCross(t *testing.T) {
	b := NewBook()

	trades := mustSubmit(t, b, 1, Buy, GTC, 100, 10)
	if len(trades) != 0 {
		t.Fatalf("expected no trades, got %v", trades)
	}
	if b.Size() != 1 {
		t.Fatalf("expected size 1, got %d", b.Size())
	}

	trades = mustSubmit(t, b, 2, Sell, GTC, 100, 10)
	if len(trades) != 1 {
		t.Fatalf("expected one trade, got %d", len(trades))
	}
	tr := trades[0]
	if tr.BidOID != 1 || tr.AskOID != 2 || tr.Quantity != 10 {
		t.Fatalf("unexpected trade: %+v", tr)
	}
	if b.Size() != 0 {
		t.Fatalf("expected size 0, got %d", b.Size())
	}
}

// S2 — partial fill, resting remainder.
func TestBook_PartialFill(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Buy, GTC, 100, 10)

	trades := mustSubmit(t, b, 2, Sell, GTC, 100, 4)
	if len(trades) != 1 || trades[0].Quantity != 4 {
		t.Fatalf("expected one trade of qty 4, got %+v", trades)
	}
	if b.Size() != 1 {
		t.Fatalf("expected size 1, got %d", b.Size())
	}

	h := b.index[1]
	order := h.elem.Value.(*Order)
	if order.Remaining != 6 {
		t.Fatalf("expected order 1 remaining 6, got %d", order.Remaining)
	}
}

// S3 — price-time priority.
func TestBook_PriceTimePriority(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Buy, GTC, 100, 5)
	mustSubmit(t, b, 2, Buy, GTC, 100, 5)

	trades := mustSubmit(t, b, 3, Sell, GTC, 100, 5)
	if len(trades) != 1 {
		t.Fatalf("expected one trade, got %d", len(trades))
	}
	if trades[0].BidOID != 1 || trades[0].AskOID != 3 {
		t.Fatalf("expected trade between orders 1 and 3, got %+v", trades[0])
	}

	h := b.index[2]
	order := h.elem.Value.(*Order)
	if order.Remaining != 5 {
		t.Fatalf("expected order 2 fully resting, got remaining %d", order.Remaining)
	}
}

// S4 — better price beats earlier time.
func TestBook_BetterPriceBeatsEarlierTime(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Buy, GTC, 100, 5)
	mustSubmit(t, b, 2, Buy, GTC, 101, 5)

	trades := mustSubmit(t, b, 3, Sell, GTC, 100, 5)
	if len(trades) != 1 || trades[0].BidOID != 2 || trades[0].AskOID != 3 {
		t.Fatalf("expected trade between orders 2 and 3, got %+v", trades)
	}

	if _, resting := b.index[1]; !resting {
		t.Fatalf("expected order 1 still resting")
	}
}

// S5 — FOK rejected: insufficient marketable quantity.
func TestBook_FOKRejected(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Sell, GTC, 100, 3)

	trades := mustSubmit(t, b, 2, Buy, FOK, 100, 5)
	if len(trades) != 0 {
		t.Fatalf("expected no trades, got %v", trades)
	}
	if b.Size() != 1 {
		t.Fatalf("expected size 1, got %d", b.Size())
	}
	if _, resting := b.index[2]; resting {
		t.Fatalf("expected FOK order 2 to never rest")
	}
}

// S6 — FOK accepted, sweeps multiple levels.
func TestBook_FOKAcceptedSweepsLevels(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Sell, GTC, 100, 3)
	mustSubmit(t, b, 2, Sell, GTC, 101, 4)

	trades := mustSubmit(t, b, 3, Buy, FOK, 101, 7)
	if len(trades) != 2 {
		t.Fatalf("expected two trades, got %d: %+v", len(trades), trades)
	}
	if trades[0].AskOID != 1 || trades[0].Quantity != 3 {
		t.Fatalf("unexpected first trade: %+v", trades[0])
	}
	if trades[1].AskOID != 2 || trades[1].Quantity != 4 {
		t.Fatalf("unexpected second trade: %+v", trades[1])
	}
	if b.Size() != 0 {
		t.Fatalf("expected size 0, got %d", b.Size())
	}
}

// S7 — amend loses time priority.
func TestBook_AmendLosesTimePriority(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Buy, GTC, 100, 5)
	mustSubmit(t, b, 2, Buy, GTC, 100, 5)

	if _, err := b.Amend(1, Buy, 100, 5); err != nil {
		t.Fatalf("Amend unexpected error: %v", err)
	}

	trades := mustSubmit(t, b, 3, Sell, GTC, 100, 5)
	if len(trades) != 1 || trades[0].BidOID != 2 || trades[0].AskOID != 3 {
		t.Fatalf("expected trade between orders 2 and 3, got %+v", trades)
	}
	if _, resting := b.index[1]; !resting {
		t.Fatalf("expected amended order 1 still resting")
	}
}

// S8 — cancel of unknown OID on an empty book is a no-op.
func TestBook_CancelNoop(t *testing.T) {
	b := NewBook()
	b.Cancel(999)
	if b.Size() != 0 {
		t.Fatalf("expected size 0, got %d", b.Size())
	}
}

func TestBook_CancelIdempotent(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Buy, GTC, 100, 5)

	b.Cancel(1)
	if b.Size() != 0 {
		t.Fatalf("expected size 0 after cancel, got %d", b.Size())
	}

	b.Cancel(1)
	if b.Size() != 0 {
		t.Fatalf("expected size 0 after repeated cancel, got %d", b.Size())
	}
}

func TestBook_DuplicateOIDRejected(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Buy, GTC, 100, 5)

	trades, err := b.Submit(1, Buy, GTC, 101, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trades != nil {
		t.Fatalf("expected nil trades for duplicate OID, got %v", trades)
	}
	if b.Size() != 1 {
		t.Fatalf("expected size still 1, got %d", b.Size())
	}
}

func TestBook_AmendUnknownOIDIsNoop(t *testing.T) {
	b := NewBook()
	trades, err := b.Amend(42, Buy, 100, 5)
	if err != nil || trades != nil {
		t.Fatalf("expected (nil, nil) for amend of unknown OID, got (%v, %v)", trades, err)
	}
}

func TestBook_SubmitRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name string
		side Side
		tif  TimeInForce
		price Price
		qty   Quantity
	}{
		{"bad side", Side(99), GTC, 100, 1},
		{"bad tif", Buy, TimeInForce(99), 100, 1},
		{"zero price", Buy, GTC, 0, 1},
		{"negative price", Buy, GTC, -5, 1},
		{"zero quantity", Buy, GTC, 100, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBook()
			trades, err := b.Submit(1, c.side, c.tif, c.price, c.qty)
			if err == nil {
				t.Fatalf("expected error, got trades=%v", trades)
			}
			if trades != nil {
				t.Fatalf("expected nil trades on error, got %v", trades)
			}
		})
	}
}

func TestBook_NoCrossInvariant(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Buy, GTC, 100, 5)
	mustSubmit(t, b, 2, Sell, GTC, 105, 5)
	mustSubmit(t, b, 3, Buy, GTC, 106, 3)

	snap := b.Snapshot()
	if len(snap.Bids) > 0 && len(snap.Asks) > 0 && snap.Bids[0].Price >= snap.Asks[0].Price {
		t.Fatalf("no-cross invariant violated: %+v", snap)
	}
}

func TestBook_SnapshotOmitsEmptyLevels(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Buy, GTC, 100, 5)
	mustSubmit(t, b, 2, Sell, GTC, 100, 5)

	snap := b.Snapshot()
	if len(snap.Bids) != 0 || len(snap.Asks) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestBook_SnapshotOrdering(t *testing.T) {
	b := NewBook()
	mustSubmit(t, b, 1, Buy, GTC, 99, 1)
	mustSubmit(t, b, 2, Buy, GTC, 101, 1)
	mustSubmit(t, b, 3, Buy, GTC, 100, 1)
	mustSubmit(t, b, 4, Sell, GTC, 205, 1)
	mustSubmit(t, b, 5, Sell, GTC, 203, 1)
	mustSubmit(t, b, 6, Sell, GTC, 204, 1)

	snap := b.Snapshot()
	wantBids := []Price{101, 100, 99}
	for i, p := range wantBids {
		if snap.Bids[i].Price != p {
			t.Fatalf("bid[%d] = %d, want %d", i, snap.Bids[i].Price, p)
		}
	}
	wantAsks := []Price{203, 204, 205}
	for i, p := range wantAsks {
		if snap.Asks[i].Price != p {
			t.Fatalf("ask[%d] = %d, want %d", i, snap.Asks[i].Price, p)
		}
	}
}
