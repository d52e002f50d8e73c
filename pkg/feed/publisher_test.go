package feed

import (
	"net"
	"testing"
	"time"

	"github.com/pebbe/zmq4"

	"github.com/moura95/clob-engine/internal/orderbook"
	"github.com/moura95/clob-engine/pkg/logger"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	l.Close()
	return "tcp://" + addr
}

func TestPublisher_PublishDeliversToSubscriber(t *testing.T) {
	addr := freeAddr(t)

	ctx, err := zmq4.NewContext()
	if err != nil {
		t.Fatalf("new zmq context: %v", err)
	}
	pull, err := ctx.NewSocket(zmq4.PULL)
	if err != nil {
		t.Fatalf("new pull socket: %v", err)
	}
	defer pull.Close()
	if err := pull.Connect(addr); err != nil {
		t.Fatalf("pull connect: %v", err)
	}

	pub, err := NewPublisher(addr, logger.Default())
	if err != nil {
		t.Fatalf("NewPublisher: %v", err)
	}
	defer pub.Close()

	trade := orderbook.Trade{BidOID: 1, AskOID: 2, Quantity: 5, Sequence: 1}
	pub.Publish("BTC-USD", trade)

	if err := pull.SetRcvtimeo(2 * time.Second); err != nil {
		t.Fatalf("SetRcvtimeo: %v", err)
	}
	data, err := pull.RecvBytes(0)
	if err != nil {
		t.Fatalf("RecvBytes: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty message")
	}
}
