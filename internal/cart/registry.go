package cart

import (
	"context"
	"log"
	"sync"
	"time"

	"mamahiam-storefront/internal/storage"
)

// Registry hands out one engine per session. An engine is created on first
// use, hydrated once from the store, and keeps its persister attached for the
// rest of the process lifetime.
type Registry struct {
	store  storage.Store
	ttl    time.Duration
	logger *log.Logger

	mu      sync.Mutex
	engines map[string]*Engine
}

func NewRegistry(store storage.Store, ttl time.Duration, logger *log.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		store:   store,
		ttl:     ttl,
		logger:  logger,
		engines: make(map[string]*Engine),
	}
}

// Get returns the engine for a session, creating and hydrating it if needed.
func (r *Registry) Get(ctx context.Context, sessionID string) *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.engines[sessionID]; ok {
		return e
	}
	keys := SessionKeys(sessionID)
	e := NewFrom(Hydrate(ctx, r.store, keys, r.ttl, r.logger))
	NewPersister(r.store, keys, r.logger).Attach(e)
	r.engines[sessionID] = e
	return e
}
