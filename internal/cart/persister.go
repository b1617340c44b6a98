package cart

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mamahiam-storefront/internal/domain"
	"mamahiam-storefront/internal/storage"
)

// Persister mirrors engine state into a storage.Store. It subscribes to the
// engine's change notifications so the engine stays free of I/O: a non-empty
// list is written together with a fresh timestamp, and an empty list removes
// both keys so storage never holds a cart the user no longer has.
type Persister struct {
	store  storage.Store
	keys   Keys
	logger *log.Logger
	now    func() time.Time
}

func NewPersister(store storage.Store, keys Keys, logger *log.Logger) *Persister {
	return &Persister{store: store, keys: keys, logger: logger, now: time.Now}
}

// Attach subscribes the persister to an engine.
func (p *Persister) Attach(e *Engine) {
	e.Subscribe(p.CartChanged)
}

// CartChanged is the Listener entry point.
func (p *Persister) CartChanged(items []domain.CartItem) {
	ctx := context.Background()
	if len(items) == 0 {
		p.store.Remove(ctx, p.keys.Items)
		p.store.Remove(ctx, p.keys.Timestamp)
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		p.logger.Printf("cart: serialize for persistence: %v", err)
		return
	}
	p.store.Save(ctx, p.keys.Items, string(payload))
	p.store.Save(ctx, p.keys.Timestamp, p.now().UTC().Format(time.RFC3339))
}
