package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/example/quickbite/pkg/checkout"
	"github.com/example/quickbite/pkg/config"
	"github.com/example/quickbite/pkg/notify"
	"github.com/example/quickbite/pkg/store"
)

// Server exposes the storefront and administration surface over HTTP. Every
// handler reads from the store or dispatches actions to it; no handler keeps
// state of its own.
type Server struct {
	config   *config.Config
	store    *store.Store
	checkout *checkout.Service
	notifier *notify.Notifier
	logger   *zap.Logger
	router   *gin.Engine
}

func New(cfg *config.Config, logger *zap.Logger, st *store.Store, co *checkout.Service, notifier *notify.Notifier) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	return &Server{
		config:   cfg,
		store:    st,
		checkout: co,
		notifier: notifier,
		logger:   logger,
		router:   router,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		// Catalog routes; create/update/delete are the admin surface
		products := v1.Group("/products")
		{
			products.GET("", s.listProducts)
			products.POST("", s.createProduct)
			products.PUT("/:id", s.updateProduct)
			products.DELETE("/:id", s.deleteProduct)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", s.getCart)
			cart.POST("/items", s.addCartItem)
			cart.PUT("/items/:id", s.updateCartItem)
			cart.DELETE("/items/:id", s.removeCartItem)
			cart.DELETE("", s.clearCart)
			cart.PUT("/visibility", s.setCartVisibility)
		}

		v1.POST("/checkout", s.placeOrder)

		// Order routes; list and status update are the admin queue
		orders := v1.Group("/orders")
		{
			orders.GET("", s.listOrders)
			orders.GET("/:id", s.getOrder)
			orders.GET("/:id/eta", s.getOrderETA)
			orders.GET("/:id/eta/stream", s.streamOrderETA)
			orders.PUT("/:id/status", s.updateOrderStatus)
		}
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unknown paths get a JSON not-found instead of a crash or empty body
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Server starting", zap.String("address", addr))
	return s.router.Run(addr)
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
