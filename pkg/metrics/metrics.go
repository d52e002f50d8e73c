package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// OrdersSubmitted counts every Submit call routed through the engine,
	// labeled by instrument symbol.
	OrdersSubmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "clob_orders_submitted_total",
		Help: "Total number of orders submitted to the engine",
	}, []string{"symbol"})

	// OrdersRejected counts Submit calls that produced no trades and no
	// resting order, labeled by the reason a driver/gateway can observe.
	OrdersRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "clob_orders_rejected_total",
		Help: "Total number of orders rejected before or during matching",
	}, []string{"symbol", "reason"})

	// Trades counts individual trade legs emitted by the matching engine.
	Trades = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "clob_trades_total",
		Help: "Total number of trades executed",
	}, []string{"symbol"})

	// MatchDuration observes the wall-clock cost of a single Submit/Amend
	// call, including the matching loop it triggers.
	MatchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clob_match_duration_seconds",
		Help:    "Duration of a single Submit/Amend call, including matching",
		Buckets: prometheus.DefBuckets,
	}, []string{"symbol"})
)

func init() {
	prometheus.MustRegister(OrdersSubmitted, OrdersRejected, Trades, MatchDuration)
}

// RejectReason enumerates the labels used for OrdersRejected, kept as
// constants so callers cannot typo a cardinality-exploding label.
const (
	ReasonInvalidParameter = "invalid_parameter"
	ReasonDuplicateOID     = "duplicate_oid"
	ReasonFOKUnfillable    = "fok_unfillable"
	ReasonUnknownSymbol    = "unknown_symbol"
)
