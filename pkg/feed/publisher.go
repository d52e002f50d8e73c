package feed

import (
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pebbe/zmq4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/moura95/clob-engine/internal/orderbook"
	"github.com/moura95/clob-engine/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var sendCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "clob_feed_publish_total",
	Help: "trade feed publish attempts, by outcome",
}, []string{"symbol", "outcome"})

func init() {
	prometheus.MustRegister(sendCounter)
}

// tradeMessage is the wire shape published for every executed trade. It
// carries the instrument symbol alongside the core orderbook.Trade since
// the core itself has no notion of instruments.
type tradeMessage struct {
	Symbol string          `json:"symbol"`
	Trade  orderbook.Trade `json:"trade"`
}

// Publisher fans out executed trades over a ZeroMQ PUSH socket. It is a
// fire-and-forget external collaborator: a publish failure is logged and
// counted, never propagated back into order submission.
type Publisher struct {
	logger *logger.Logger
	soc    *zmq4.Socket
	sendMx sync.Mutex
}

// NewPublisher connects a PUSH socket to addr. Unlike the corpus's
// CURVE-authenticated, monitor-goroutine variant (grounded on
// grimkirill-code-piece/pkg/trading/zmq-push.go), this fan-out has a
// single local subscriber topology and needs neither.
func NewPublisher(addr string, log *logger.Logger) (*Publisher, error) {
	ctx, err := zmq4.NewContext()
	if err != nil {
		return nil, errors.WithMessage(err, "feed: create zmq context")
	}

	sock, err := ctx.NewSocket(zmq4.PUSH)
	if err != nil {
		return nil, errors.WithMessage(err, "feed: create push socket")
	}
	if err = sock.SetSndhwm(100000); err != nil {
		return nil, errors.WithMessage(err, "feed: set send buffer")
	}
	if err = sock.SetLinger(5 * time.Second); err != nil {
		return nil, errors.WithMessage(err, "feed: set linger")
	}
	if err = sock.Bind(addr); err != nil {
		return nil, errors.WithMessage(err, "feed: bind "+addr)
	}

	return &Publisher{logger: log, soc: sock}, nil
}

// Publish sends a single trade fire-and-forget. Errors are logged and
// counted rather than returned, matching the "external collaborator
// observes results, never affects book state" contract.
func (p *Publisher) Publish(symbol string, trade orderbook.Trade) {
	data, err := json.Marshal(tradeMessage{Symbol: symbol, Trade: trade})
	if err != nil {
		p.logger.Errorf("feed: marshal trade: %v", err)
		sendCounter.WithLabelValues(symbol, "marshal_error").Inc()
		return
	}

	p.sendMx.Lock()
	_, err = p.soc.SendBytes(data, zmq4.DONTWAIT)
	p.sendMx.Unlock()

	if err != nil {
		p.logger.Errorf("feed: send trade: %v", err)
		sendCounter.WithLabelValues(symbol, "send_error").Inc()
		return
	}
	sendCounter.WithLabelValues(symbol, "ok").Inc()
}

// Close releases the underlying socket.
func (p *Publisher) Close() error {
	return p.soc.Close()
}
