// Package storage provides the key-value persistence adapter backing the cart.
// The contract is deliberately soft: reads report presence, writes and removes
// are best-effort, and no method ever propagates a storage failure to the
// caller. The cart must stay usable in memory when the store is gone.
package storage

import "context"

// Store is a key-value persistence mechanism for cart state.
type Store interface {
	// Available probes whether the store currently accepts writes by
	// writing and deleting a throwaway key. It never panics.
	Available(ctx context.Context) bool

	// Load returns the stored value and whether it was present. Read
	// failures report absence.
	Load(ctx context.Context, key string) (string, bool)

	// Save writes a value best-effort. Failures are logged, not returned.
	Save(ctx context.Context, key, value string)

	// Remove deletes a key best-effort, same failure policy as Save.
	Remove(ctx context.Context, key string)
}

// probeKey is the throwaway key used by availability checks.
const probeKey = "storefront:probe"
