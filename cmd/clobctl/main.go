package main

import (
	"os"

	"github.com/moura95/clob-engine/internal/orderbook"
	"github.com/moura95/clob-engine/pkg/logger"
)

func main() {
	logger.SetLevel(logger.INFO)

	book := orderbook.NewBook()

	if len(os.Args) > 1 {
		runCSV(book, os.Args[1])
		return
	}

	runInteractive(book)
}
