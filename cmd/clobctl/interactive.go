package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/moura95/clob-engine/config"
	"github.com/moura95/clob-engine/internal/orderbook"
	"github.com/moura95/clob-engine/pkg/utils"
)

// runInteractive drives book from a numeric menu over stdin, grounded on
// the testingCreateOrder/testingModifyOrder/testingCancelOrder/
// testingDisplayOrderBook loop: create, amend, cancel, show, exit.
func runInteractive(book *orderbook.Book) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		cfg = &config.Config{}
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to the order book testing framework!")

	for {
		printMenu()
		choice, ok := readInt(scanner, "Choose an option (1-5): ")
		if !ok {
			continue
		}

		switch choice {
		case 1:
			createOrder(book, scanner, cfg)
		case 2:
			amendOrder(book, scanner, cfg)
		case 3:
			cancelOrder(book, scanner)
		case 4:
			showOrderBook(book)
		case 5:
			fmt.Println("Exiting...")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func printMenu() {
	fmt.Println("\n=== Order Book Testing Framework ===")
	fmt.Println("1. Create an order")
	fmt.Println("2. Amend an existing order")
	fmt.Println("3. Cancel an order")
	fmt.Println("4. Display order book")
	fmt.Println("5. Exit")
}

func createOrder(book *orderbook.Book, scanner *bufio.Scanner, cfg *config.Config) {
	fmt.Println("\n--- Create New Order ---")
	oid, ok := readUint(scanner, "Order ID: ")
	if !ok {
		return
	}
	side, ok := readSide(scanner)
	if !ok {
		return
	}
	tif, ok := readTimeInForce(scanner)
	if !ok {
		return
	}
	price, ok := readPrice(scanner, cfg)
	if !ok {
		return
	}
	quantity, ok := readQuantity(scanner)
	if !ok {
		return
	}

	trades, err := book.Submit(orderbook.OrderID(oid), side, tif, price, orderbook.Quantity(quantity))
	if err != nil {
		fmt.Printf("Order rejected: %v\n", err)
		return
	}
	printTrades(trades, "created")
}

func amendOrder(book *orderbook.Book, scanner *bufio.Scanner, cfg *config.Config) {
	fmt.Println("\n--- Amend Existing Order ---")
	oid, ok := readUint(scanner, "Order ID to amend: ")
	if !ok {
		return
	}
	side, ok := readSide(scanner)
	if !ok {
		return
	}
	price, ok := readPrice(scanner, cfg)
	if !ok {
		return
	}
	quantity, ok := readQuantity(scanner)
	if !ok {
		return
	}

	trades, err := book.Amend(orderbook.OrderID(oid), side, price, orderbook.Quantity(quantity))
	if err != nil {
		fmt.Printf("Amend rejected: %v\n", err)
		return
	}
	printTrades(trades, "amended")
}

func cancelOrder(book *orderbook.Book, scanner *bufio.Scanner) {
	fmt.Println("\n--- Cancel Order ---")
	oid, ok := readUint(scanner, "Order ID to cancel: ")
	if !ok {
		return
	}
	book.Cancel(orderbook.OrderID(oid))
	fmt.Println("Order cancellation processed.")
}

func showOrderBook(book *orderbook.Book) {
	fmt.Println("\n--- Order Book Status ---")
	fmt.Printf("Total orders in book: %d\n", book.Size())

	snap := book.Snapshot()
	fmt.Println("Bids:")
	for _, lvl := range snap.Bids {
		fmt.Printf("  %d @ %d\n", lvl.Quantity, lvl.Price)
	}
	fmt.Println("Asks:")
	for _, lvl := range snap.Asks {
		fmt.Printf("  %d @ %d\n", lvl.Quantity, lvl.Price)
	}
}

func printTrades(trades []orderbook.Trade, verb string) {
	fmt.Printf("Order %s successfully!\n", verb)
	if len(trades) == 0 {
		return
	}
	fmt.Printf("Generated %d trade(s):\n", len(trades))
	for _, tr := range trades {
		fmt.Printf("  Bid %d @ %d vs Ask %d @ %d, qty %d\n",
			tr.BidOID, tr.BidPrice, tr.AskOID, tr.AskPrice, tr.Quantity)
	}
}

func readInt(scanner *bufio.Scanner, prompt string) (int, bool) {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Println("Invalid number.")
		return 0, false
	}
	return v, true
}

func readUint(scanner *bufio.Scanner, prompt string) (uint64, bool) {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSpace(scanner.Text()), 10, 64)
	if err != nil {
		fmt.Println("Invalid order id.")
		return 0, false
	}
	return v, true
}

func readSide(scanner *bufio.Scanner) (orderbook.Side, bool) {
	choice, ok := readInt(scanner, "Order side (1 for BUY, 2 for SELL): ")
	if !ok {
		return 0, false
	}
	if choice == 1 {
		return orderbook.Buy, true
	}
	return orderbook.Sell, true
}

func readTimeInForce(scanner *bufio.Scanner) (orderbook.TimeInForce, bool) {
	choice, ok := readInt(scanner, "Order type (1 for GTC, 2 for FOK): ")
	if !ok {
		return 0, false
	}
	if choice == 1 {
		return orderbook.GTC, true
	}
	return orderbook.FOK, true
}

func readPrice(scanner *bufio.Scanner, cfg *config.Config) (orderbook.Price, bool) {
	fmt.Print("Price: ")
	if !scanner.Scan() {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(scanner.Text()), 10, 64)
	if err != nil {
		fmt.Println("Invalid price.")
		return 0, false
	}
	price := orderbook.Price(v)

	if !utils.IsValidTick(price, cfg.DefaultTickSize) {
		rounded := utils.RoundToTick(price, cfg.DefaultTickSize)
		fmt.Printf("Price %d is not a multiple of the configured tick size %d, rounding down to %d\n",
			price, cfg.DefaultTickSize, rounded)
		price = rounded
	}
	return price, true
}

func readQuantity(scanner *bufio.Scanner) (uint64, bool) {
	fmt.Print("Quantity: ")
	if !scanner.Scan() {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSpace(scanner.Text()), 10, 64)
	if err != nil {
		fmt.Println("Invalid quantity.")
		return 0, false
	}
	return v, true
}
