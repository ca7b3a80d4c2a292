package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appbook "github.com/xiebiao/bookstore-integration/internal/application/book"
	appdelivery "github.com/xiebiao/bookstore-integration/internal/application/delivery"
	apporder "github.com/xiebiao/bookstore-integration/internal/application/order"
	"github.com/xiebiao/bookstore-integration/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-integration/internal/infrastructure/persistence/memory"
	httpapi "github.com/xiebiao/bookstore-integration/internal/interface/http"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/middleware"
)

// @title           Bookstore Integration API
// @version         1.0.0
// @description     API for Inventory, Sales, and Delivery Systems

// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name x-api-key
func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	setupLogger(cfg.Log)
	log.Info().
		Int("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Str("books_seed", cfg.Seed.BooksFile).
		Msg("starting bookstore integration api")

	// Seed the three stores. Stores are explicitly owned here and passed by
	// reference down the chain; they live for the process lifetime.
	books, err := memory.LoadBooks(cfg.Seed.BooksFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load books seed")
	}
	orders, err := memory.LoadOrders(cfg.Seed.OrdersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load orders seed")
	}
	deliveries, err := memory.LoadDeliveries(cfg.Seed.DeliveriesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load deliveries seed")
	}

	bookStore := memory.NewBookStore(books)
	orderLedger := memory.NewOrderLedger(orders)
	deliveryLedger := memory.NewDeliveryLedger(deliveries)
	log.Info().
		Int("books", len(books)).
		Int("orders", len(orders)).
		Int("deliveries", len(deliveries)).
		Msg("seed data loaded")

	// Dependency chain: Repository <- UseCase <- Handler.
	listBooksUseCase := appbook.NewListBooksUseCase(bookStore)
	getBookUseCase := appbook.NewGetBookUseCase(bookStore)
	placeOrderUseCase := apporder.NewPlaceOrderUseCase(bookStore, orderLedger)
	recordDeliveryUseCase := appdelivery.NewRecordDeliveryUseCase(deliveryLedger)

	bookHandler := handler.NewBookHandler(listBooksUseCase, getBookUseCase)
	orderHandler := handler.NewOrderHandler(placeOrderUseCase)
	deliveryHandler := handler.NewDeliveryHandler(recordDeliveryUseCase)
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(cfg.Auth.APIKey)

	r := httpapi.NewRouter(cfg.Server.Mode, bookHandler, orderHandler, deliveryHandler, apiKeyMiddleware)

	addr := cfg.Server.Addr()
	log.Info().Str("addr", addr).Msg("http server listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}

// setupLogger configures the global zerolog logger from config.
func setupLogger(cfg config.LogConfig) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}
