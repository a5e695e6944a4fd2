package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/gearmart/orderdesk/internal/server/http/handlers"
	"github.com/gearmart/orderdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	workflowHandler := handlers.NewWorkflowHandler(facade)

	api := engine.Group("/api")
	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/policy", orderHandler.Policy)
	orders.GET("/:id/tracking", orderHandler.Tracking)
	orders.GET("/:id/invoice", orderHandler.Invoice)
	orders.POST("/:id/cancel", workflowHandler.Cancel)
	orders.POST("/:id/restore", workflowHandler.Restore)

	return engine
}
