// Package checkout drives the order flow: validate the shipping form, turn
// the cart snapshot into an order submission, call the order endpoint, and
// manage the local success/failure transition.
package checkout

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"sync"

	"mamahiam-storefront/internal/domain"
)

var (
	// ErrSubmitInFlight rejects a second submit while one is pending. The
	// submit control stays disabled for the duration of the pending call.
	ErrSubmitInFlight = errors.New("order submission already in progress")

	// ErrEmptyCart rejects checkout against an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Form is the shipping-info form. Notes are optional.
type Form struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Validate checks the form and returns per-field errors, or nil when valid.
// No network call happens on a validation failure.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "name is required"
	}
	phone := strings.TrimSpace(f.Phone)
	switch {
	case phone == "":
		errs["phone"] = "phone number is required"
	case !phonePattern.MatchString(stripWhitespace(phone)):
		errs["phone"] = "phone number must be 10 digits"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "address is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

type cartEngine interface {
	Items() []domain.CartItem
	Clear()
}

type orderCreator interface {
	CreateOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.OrderConfirmation, error)
}

// Controller is the checkout flow for one cart. It tracks the in-flight
// guard, the order-completed flag that keeps the empty-cart redirect from
// firing right after a successful submission, and the latest confirmation for
// the confirmation view.
type Controller struct {
	cart   cartEngine
	orders orderCreator
	logger *log.Logger

	mu         sync.Mutex
	submitting bool
	completed  bool
	latest     *domain.OrderConfirmation
}

func New(cart cartEngine, orders orderCreator, logger *log.Logger) *Controller {
	return &Controller{cart: cart, orders: orders, logger: logger}
}

// Submit validates the form and sends the order. On success the completed
// flag is set before the cart is cleared; on any failure the cart is left
// untouched so the user can retry. Returns FieldErrors for validation
// failures and the order client's classified error otherwise.
func (c *Controller) Submit(ctx context.Context, form Form) (*domain.OrderConfirmation, error) {
	if errs := form.Validate(); errs != nil {
		return nil, errs
	}

	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	c.submitting = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	items := c.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	conf, err := c.orders.CreateOrder(ctx, buildSubmission(form, items))
	if err != nil {
		c.logger.Printf("checkout: order submission failed: %v", err)
		return nil, err
	}

	c.mu.Lock()
	c.completed = true
	c.latest = conf
	c.mu.Unlock()
	c.cart.Clear()
	return conf, nil
}

func buildSubmission(form Form, items []domain.CartItem) domain.OrderSubmission {
	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.OrderLine{ShopProductID: item.ID, Qty: item.Quantity})
	}
	return domain.OrderSubmission{
		Name:    strings.TrimSpace(form.Name),
		Phone:   strings.TrimSpace(form.Phone),
		Address: strings.TrimSpace(form.Address),
		Notes:   strings.TrimSpace(form.Notes),
		Items:   lines,
	}
}

// Completed reports whether an order just finished for this cart.
func (c *Controller) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}

// ShouldRedirect is the checkout guard: an empty cart sends the user home
// unless an order just completed, since success clears the cart right before
// the confirmation view renders.
func (c *Controller) ShouldRedirect() bool {
	return len(c.cart.Items()) == 0 && !c.Completed()
}

// LatestConfirmation returns the most recent confirmation, if any.
func (c *Controller) LatestConfirmation() (*domain.OrderConfirmation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest, c.latest != nil
}
