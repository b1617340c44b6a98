package httpserver

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"mamahiam-storefront/internal/cart"
	"mamahiam-storefront/internal/checkout"
)

type handlers struct {
	logger  *log.Logger
	carts   *cart.Registry
	catalog Catalog
	orders  OrderClient
	grace   time.Duration

	mu        sync.Mutex
	checkouts map[string]*checkout.Controller
}

func newHandlers(logger *log.Logger, deps Deps) *handlers {
	grace := deps.ConfirmationGrace
	if grace <= 0 {
		grace = checkout.DefaultGrace
	}
	return &handlers{
		logger:    logger,
		carts:     deps.Carts,
		catalog:   deps.Catalog,
		orders:    deps.Orders,
		grace:     grace,
		checkouts: make(map[string]*checkout.Controller),
	}
}

// engine returns the session's cart engine, hydrating it on first use.
func (h *handlers) engine(c *gin.Context) *cart.Engine {
	return h.carts.Get(c.Request.Context(), cartID(c))
}

// checkoutFor returns the session's checkout controller. Like the engine it
// lives for the rest of the process: the completed flag and the latest
// confirmation must survive across requests.
func (h *handlers) checkoutFor(c *gin.Context) *checkout.Controller {
	sid := cartID(c)
	engine := h.carts.Get(c.Request.Context(), sid)
	h.mu.Lock()
	defer h.mu.Unlock()
	if ctl, ok := h.checkouts[sid]; ok {
		return ctl
	}
	ctl := checkout.New(engine, h.orders, h.logger)
	h.checkouts[sid] = ctl
	return ctl
}

// upstreamError answers a failed catalog read: the page shows a retry
// affordance, nothing retries automatically.
func (h *handlers) upstreamError(c *gin.Context, what string, err error) {
	h.logger.Printf("gateway: load %s: %v", what, err)
	c.JSON(http.StatusBadGateway, gin.H{
		"error":     "could not load " + what,
		"retryable": true,
	})
}
