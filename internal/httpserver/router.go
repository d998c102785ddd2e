package httpserver

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"modernshop/internal/domain"
	cartsvc "modernshop/internal/service/cart"
	ordersvc "modernshop/internal/service/order"
)

// CatalogService is the read side of the storefront.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*domain.Category, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	ListNewArrivals(ctx context.Context) ([]domain.Product, error)
	ListOnSale(ctx context.Context) ([]domain.Product, error)
}

type CartService interface {
	Get(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	Summary(ctx context.Context, sessionID string) (domain.CartSummary, error)
	Add(ctx context.Context, in cartsvc.AddInput) (*domain.CartItem, error)
	SetQuantity(ctx context.Context, itemID int64, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, itemID int64) (bool, error)
	Clear(ctx context.Context, sessionID string) error
}

type OrderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
}

// Deps are the services behind the API. Ready backs /readyz.
type Deps struct {
	Catalog CatalogService
	Cart    CartService
	Orders  OrderService
	Ready   func(ctx context.Context) error
}

type Options struct {
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, deps Deps, opts Options) (*gin.Engine, error) {
	router := gin.New()
	router.Use(
		requestIDMiddleware(),
		gin.LoggerWithWriter(zap.NewStdLog(logger.Named("access")).Writer()),
		gin.Recovery(),
		cors.New(corsConfig(opts.CORSOrigins)),
	)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Ready))

	h := &handlers{deps: deps, logger: logger.Named("api")}
	api := router.Group("/api", localeMiddleware())

	api.GET("/locale", h.locale)

	api.GET("/categories", h.listCategories)
	api.GET("/categories/:slug", h.getCategory)

	api.GET("/products", h.listProducts)
	api.GET("/products/featured", h.listFeatured)
	api.GET("/products/new-arrivals", h.listNewArrivals)
	api.GET("/products/sale", h.listOnSale)
	api.GET("/products/category/:categoryId", h.listProductsByCategory)
	api.GET("/products/:slug", h.getProduct)

	api.GET("/cart/:sessionId", h.getCart)
	api.GET("/cart/:sessionId/summary", h.cartSummary)
	api.POST("/cart", h.addToCart)
	api.PATCH("/cart/:id", h.updateCartItem)
	api.DELETE("/cart/session/:sessionId", h.clearCart)
	api.DELETE("/cart/:id", h.removeCartItem)

	api.POST("/orders", h.createOrder)
	api.GET("/orders/:id", h.getOrder)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader, "Content-Language"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
