//go:build wireinject
// +build wireinject

// Wire injector definition. Run `wire gen ./cmd/api` to regenerate the
// assembled constructor; main.go keeps a hand-wired equivalent.

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookstore-integration/internal/application/book"
	appdelivery "github.com/xiebiao/bookstore-integration/internal/application/delivery"
	apporder "github.com/xiebiao/bookstore-integration/internal/application/order"
	"github.com/xiebiao/bookstore-integration/internal/domain/book"
	"github.com/xiebiao/bookstore-integration/internal/domain/delivery"
	"github.com/xiebiao/bookstore-integration/internal/domain/order"
	"github.com/xiebiao/bookstore-integration/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-integration/internal/infrastructure/persistence/memory"
	httpapi "github.com/xiebiao/bookstore-integration/internal/interface/http"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/middleware"
)

// infrastructureSet loads configuration and the seeded stores.
var infrastructureSet = wire.NewSet(
	config.Load,
	provideBookStore,
	provideOrderLedger,
	provideDeliveryLedger,
	wire.Bind(new(book.Repository), new(*memory.BookStore)),
	wire.Bind(new(order.Repository), new(*memory.OrderLedger)),
	wire.Bind(new(delivery.Repository), new(*memory.DeliveryLedger)),
)

// applicationSet wires the use cases.
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	apporder.NewPlaceOrderUseCase,
	appdelivery.NewRecordDeliveryUseCase,
)

// interfaceSet wires handlers and middleware.
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewOrderHandler,
	handler.NewDeliveryHandler,
	provideAPIKeyMiddleware,
)

func provideBookStore(cfg *config.Config) (*memory.BookStore, error) {
	books, err := memory.LoadBooks(cfg.Seed.BooksFile)
	if err != nil {
		return nil, err
	}
	return memory.NewBookStore(books), nil
}

func provideOrderLedger(cfg *config.Config) (*memory.OrderLedger, error) {
	orders, err := memory.LoadOrders(cfg.Seed.OrdersFile)
	if err != nil {
		return nil, err
	}
	return memory.NewOrderLedger(orders), nil
}

func provideDeliveryLedger(cfg *config.Config) (*memory.DeliveryLedger, error) {
	deliveries, err := memory.LoadDeliveries(cfg.Seed.DeliveriesFile)
	if err != nil {
		return nil, err
	}
	return memory.NewDeliveryLedger(deliveries), nil
}

func provideAPIKeyMiddleware(cfg *config.Config) *middleware.APIKeyMiddleware {
	return middleware.NewAPIKeyMiddleware(cfg.Auth.APIKey)
}

func provideEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	deliveryHandler *handler.DeliveryHandler,
	apiKeyMiddleware *middleware.APIKeyMiddleware,
) *gin.Engine {
	return httpapi.NewRouter(cfg.Server.Mode, bookHandler, orderHandler, deliveryHandler, apiKeyMiddleware)
}

// InitializeApp assembles the fully wired gin engine.
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		applicationSet,
		interfaceSet,
		provideEngine,
	)
	return nil, nil
}
