// Package http assembles the gin engine: routes, middleware, and docs.
package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookstore-integration/docs"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-integration/pkg/response"
)

// NewRouter builds the engine and registers every route. The home route and
// health check stay outside the API-key guard; everything under /api is
// protected.
func NewRouter(
	mode string,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	deliveryHandler *handler.DeliveryHandler,
	apiKeyMiddleware *middleware.APIKeyMiddleware,
) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Public routes
	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "Bookstore Integration API Running"})
	})
	r.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "pong", "status": "healthy"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected API routes
	api := r.Group("/api")
	api.Use(apiKeyMiddleware.RequireAPIKey())
	{
		books := api.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:book_id", bookHandler.GetBook)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.PlaceOrder)
		}

		deliveries := api.Group("/delivery")
		{
			deliveries.POST("/update", deliveryHandler.UpdateDelivery)
		}
	}

	return r
}
