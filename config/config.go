package config

import (
	"os"
	"strconv"

	"github.com/moura95/clob-engine/internal/orderbook"
	"github.com/moura95/clob-engine/pkg/logger"
)

// Config is the process-wide, environment-driven configuration. It
// carries no per-instrument state: the engine creates a book on first
// use of any symbol, DefaultSymbol/DefaultTickSize only seed the
// interactive driver's default prompts.
type Config struct {
	HTTPServerAddress string
	MetricsAddress    string
	FeedAddress       string
	DefaultSymbol     string
	DefaultTickSize   orderbook.Price
	LogLevel          logger.Level
}

func Load() (*Config, error) {
	tickSize, err := strconv.ParseInt(getEnv("DEFAULT_TICK_SIZE", "0"), 10, 64)
	if err != nil {
		tickSize = 0
	}

	return &Config{
		HTTPServerAddress: getEnv("HTTP_SERVER_ADDRESS", "0.0.0.0:8080"),
		MetricsAddress:    getEnv("METRICS_ADDRESS", "0.0.0.0:9090"),
		FeedAddress:       getEnv("FEED_ADDRESS", "tcp://0.0.0.0:5556"),
		DefaultSymbol:     getEnv("DEFAULT_SYMBOL", "BTC-USD"),
		DefaultTickSize:   orderbook.Price(tickSize),
		LogLevel:          parseLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseLevel(value string) logger.Level {
	switch value {
	case "debug":
		return logger.DEBUG
	case "warning", "warn":
		return logger.WARNING
	case "error":
		return logger.ERROR
	default:
		return logger.INFO
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
