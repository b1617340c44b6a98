package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"mamahiam-storefront/internal/cart"
	"mamahiam-storefront/internal/domain"
	"mamahiam-storefront/internal/shopapi"
	"mamahiam-storefront/internal/storage"
)

// Catalog is the read side of the remote storefront API.
type Catalog interface {
	Products(ctx context.Context, q shopapi.ProductQuery) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	OffersProducts(ctx context.Context) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Branches(ctx context.Context) ([]domain.Branch, error)
	Sliders(ctx context.Context) ([]domain.Slider, error)
	Settings(ctx context.Context) (domain.Settings, error)
}

// OrderClient is the write side: order creation.
type OrderClient interface {
	CreateOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.OrderConfirmation, error)
}

// Deps carries everything the router needs.
type Deps struct {
	Store             storage.Store
	Carts             *cart.Registry
	Catalog           Catalog
	Orders            OrderClient
	Sessions          sessions.Store
	AllowedOrigins    []string
	ConfirmationGrace time.Duration
}

// buildRouter wires routes for the storefront gateway.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))

	h := newHandlers(logger, deps)

	api := router.Group("/api")
	api.Use(sessionMiddleware(deps.Sessions, logger))
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/featured-products", h.featuredProducts)
		api.GET("/offers-products", h.offersProducts)
		api.GET("/categories", h.categories)
		api.GET("/branches", h.branches)
		api.GET("/sliders", h.sliders)
		api.GET("/settings", h.settings)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PATCH("/cart/items/:id", h.updateCartItem)
		api.DELETE("/cart/items/:id", h.removeCartItem)
		api.DELETE("/cart", h.clearCart)
		api.POST("/cart/visibility", h.setCartVisibility)

		api.POST("/checkout", h.submitOrder)
		api.GET("/orders/latest", h.latestOrder)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
