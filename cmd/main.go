package main

import (
	"log"

	"github.com/moura95/clob-engine/config"
	server "github.com/moura95/clob-engine/internal"

	_ "github.com/moura95/clob-engine/docs"
)

// @title CLOB Engine API
// @version 1.0.0
// @description Central Limit Order Book (CLOB) matching engine with a price-time-priority core and HTTP/WS gateway
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}
