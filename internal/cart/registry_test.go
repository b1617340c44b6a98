package cart

import (
	"context"
	"testing"
	"time"
)

func TestRegistryReturnsSameEnginePerSession(t *testing.T) {
	r := NewRegistry(newStubStore(), DefaultTTL, testLogger())
	ctx := context.Background()

	a := r.Get(ctx, "session-a")
	if r.Get(ctx, "session-a") != a {
		t.Fatalf("same session should reuse the same engine")
	}
	if r.Get(ctx, "session-b") == a {
		t.Fatalf("different sessions must not share an engine")
	}
}

func TestRegistryIsolatesSessions(t *testing.T) {
	r := NewRegistry(newStubStore(), DefaultTTL, testLogger())
	ctx := context.Background()

	r.Get(ctx, "session-a").AddItem(product(1, "Shirt", 100))
	if got := r.Get(ctx, "session-b").Count(); got != 0 {
		t.Fatalf("session-b should start empty, got count %d", got)
	}
}

func TestRegistryHydratesAndPersistsPerSession(t *testing.T) {
	store := newStubStore()
	ctx := context.Background()

	first := NewRegistry(store, DefaultTTL, testLogger())
	first.Get(ctx, "session-a").AddItemQuantity(product(1, "Shirt", 100), 2)

	// A new registry over the same store sees the persisted cart.
	second := NewRegistry(store, DefaultTTL, testLogger())
	items := second.Get(ctx, "session-a").Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected persisted cart back, got %+v", items)
	}
}

func TestRegistryDefaultsTTL(t *testing.T) {
	r := NewRegistry(newStubStore(), 0, testLogger())
	if r.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, r.ttl)
	}
	r = NewRegistry(newStubStore(), time.Hour, testLogger())
	if r.ttl != time.Hour {
		t.Fatalf("expected ttl to be kept, got %v", r.ttl)
	}
}
