package server

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/moura95/clob-engine/api/v1"
	"github.com/moura95/clob-engine/config"
	"github.com/moura95/clob-engine/internal/engine"
	"github.com/moura95/clob-engine/internal/handler"
	"github.com/moura95/clob-engine/pkg/feed"
	"github.com/moura95/clob-engine/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const Version = "1.0.0"

// Server is the HTTP/WS gateway around a single engine.Engine. It carries
// no matching logic; every route is a thin translation layer, per the
// core's "external collaborator" contract.
type Server struct {
	config           *config.Config
	engine           *engine.Engine
	orderHandler     *handler.OrderHandler
	orderbookHandler *handler.OrderbookHandler
	wsGateway        *wsGateway
	startTime        time.Time
}

func NewServer(cfg *config.Config) (*Server, error) {
	logger.Info("initializing server")

	var pub *feed.Publisher
	if cfg.FeedAddress != "" {
		var err error
		pub, err = feed.NewPublisher(cfg.FeedAddress, logger.Default())
		if err != nil {
			logger.Warningf("trade feed disabled, could not bind %s: %v", cfg.FeedAddress, err)
			pub = nil
		}
	}

	eng := engine.NewEngine(logger.Default(), pub)
	ws := newWSGateway(eng)

	return &Server{
		config:           cfg,
		engine:           eng,
		orderHandler:     handler.NewOrderHandler(eng),
		orderbookHandler: handler.NewOrderbookHandler(eng),
		wsGateway:        ws,
		startTime:        time.Now(),
	}, nil
}

func (s *Server) Start() error {
	if s.config.MetricsAddress != "" {
		go s.startMetricsServer()
	}

	mux := s.registerRoutes()

	logger.Infof("server starting on %s (version %s)", s.config.HTTPServerAddress, Version)
	return http.ListenAndServe(s.config.HTTPServerAddress, mux)
}

// startMetricsServer binds a dedicated listener for /metrics, separate
// from the application mux, so a scraper never shares a port with order
// traffic. Runs for the lifetime of the process; a bind failure here is
// logged rather than fatal, since a dead scrape endpoint shouldn't take
// order handling down with it.
func (s *Server) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Infof("metrics listening on %s", s.config.MetricsAddress)
	if err := http.ListenAndServe(s.config.MetricsAddress, mux); err != nil {
		logger.Errorf("metrics server stopped: %v", err)
	}
}

func (s *Server) registerRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)

	mux.HandleFunc("/api/v1/orders", s.orderHandler.PlaceOrder)
	mux.HandleFunc("/api/v1/orders/amend", s.orderHandler.AmendOrder)
	mux.HandleFunc("/api/v1/orders/cancel", s.orderHandler.CancelOrder)
	mux.HandleFunc("/api/v1/orderbook", s.orderbookHandler.GetOrderbook)

	mux.HandleFunc("/ws/trades", s.wsGateway.serveTrades)
	mux.HandleFunc("/ws/book", s.wsGateway.serveBook)

	logger.Info("routes registered:")
	logger.Info("  GET  /health")
	logger.Info("  POST /api/v1/orders")
	logger.Info("  POST /api/v1/orders/amend")
	logger.Info("  POST /api/v1/orders/cancel")
	logger.Info("  GET  /api/v1/orderbook?symbol=")
	logger.Info("  GET  /ws/trades?symbol=")
	logger.Info("  GET  /ws/book?symbol=")

	return mux
}

// handleHealth godoc
// @Summary Health check
// @Description Returns the health status of the API
// @Tags Health
// @Produce json
// @Success 200 {object} v1.HealthResponse "Service is healthy"
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := v1.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Errorf("error encoding health response: %v", err)
	}
}
