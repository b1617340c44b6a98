// Package cart holds the shopping-cart state engine: line items with merge-on-add
// semantics, panel visibility, hydration with a 12-hour expiry, and change
// notifications consumed by a persistence subscriber. The engine itself does no
// I/O.
package cart

import (
	"math"
	"sync"

	"mamahiam-storefront/internal/domain"
)

// Listener receives a snapshot of the item list after every item mutation.
// Visibility changes do not notify.
type Listener func(items []domain.CartItem)

// Engine is the in-memory cart. All mutations take the lock, so each one is a
// single atomic state replacement; listeners are invoked outside the lock with
// a private copy.
type Engine struct {
	mu        sync.Mutex
	items     []domain.CartItem
	open      bool
	listeners []Listener
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{}
}

// NewFrom returns an engine seeded with hydrated items. The slice is copied.
func NewFrom(items []domain.CartItem) *Engine {
	e := &Engine{}
	e.items = append(e.items, items...)
	return e
}

// Subscribe registers a listener for item-list changes.
func (e *Engine) Subscribe(l Listener) {
	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()
}

// AddItem adds one unit of the product, merging into an existing line by id.
func (e *Engine) AddItem(p domain.Product) {
	e.AddItemQuantity(p, 1)
}

// AddItemQuantity adds the given quantity of the product, merging by id.
// Non-positive quantities are a no-op.
func (e *Engine) AddItemQuantity(p domain.Product, quantity int) {
	if quantity <= 0 {
		return
	}
	e.mu.Lock()
	merged := false
	for i := range e.items {
		if e.items[i].ID == p.ID {
			e.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		e.items = append(e.items, domain.ItemFromProduct(p, quantity))
	}
	e.notifyLocked()
}

// RemoveItem drops the line with the given product id.
func (e *Engine) RemoveItem(id int64) {
	e.mu.Lock()
	kept := e.items[:0]
	for _, item := range e.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	e.items = kept
	e.notifyLocked()
}

// UpdateQuantity replaces a line's quantity in place. A quantity of zero or
// below removes the line instead.
func (e *Engine) UpdateQuantity(id int64, quantity int) {
	if quantity <= 0 {
		e.RemoveItem(id)
		return
	}
	e.mu.Lock()
	for i := range e.items {
		if e.items[i].ID == id {
			e.items[i].Quantity = quantity
			break
		}
	}
	e.notifyLocked()
}

// Clear empties the cart.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.items = nil
	e.notifyLocked()
}

// Items returns a snapshot copy of the line items.
func (e *Engine) Items() []domain.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Count is the sum of all line quantities, not the number of lines.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, item := range e.items {
		if item.Quantity > 0 {
			total += item.Quantity
		}
	}
	return total
}

// Total sums price*quantity over all lines. Non-finite prices and negative
// quantities count as zero rather than poisoning the total.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	var total float64
	for _, item := range e.items {
		price := item.Price
		if math.IsNaN(price) || math.IsInf(price, 0) {
			price = 0
		}
		qty := item.Quantity
		if qty < 0 {
			qty = 0
		}
		total += price * float64(qty)
	}
	return total
}

// IsOpen reports the cart panel visibility.
func (e *Engine) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open
}

// SetOpen sets panel visibility. Visibility never touches persistence.
func (e *Engine) SetOpen(open bool) {
	e.mu.Lock()
	e.open = open
	e.mu.Unlock()
}

// Toggle flips panel visibility.
func (e *Engine) Toggle() {
	e.mu.Lock()
	e.open = !e.open
	e.mu.Unlock()
}

func (e *Engine) snapshotLocked() []domain.CartItem {
	out := make([]domain.CartItem, len(e.items))
	copy(out, e.items)
	return out
}

// notifyLocked releases the lock and delivers the snapshot to listeners.
func (e *Engine) notifyLocked() {
	snapshot := e.snapshotLocked()
	listeners := e.listeners
	e.mu.Unlock()
	for _, l := range listeners {
		l(snapshot)
	}
}
