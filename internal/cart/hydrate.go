package cart

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mamahiam-storefront/internal/domain"
	"mamahiam-storefront/internal/storage"
)

// DefaultTTL is how long a persisted cart stays valid after its last write.
const DefaultTTL = 12 * time.Hour

// Keys names the paired storage keys for one cart: the serialized item list
// and the RFC3339 timestamp of its last write.
type Keys struct {
	Items     string
	Timestamp string
}

// DefaultKeys is the key pair used by single-cart clients such as the CLI.
func DefaultKeys() Keys {
	return Keys{Items: "mamahiam:cart", Timestamp: "mamahiam:cart:ts"}
}

// SessionKeys scopes the key pair to a gateway session.
func SessionKeys(sessionID string) Keys {
	return Keys{
		Items:     "mamahiam:cart:" + sessionID,
		Timestamp: "mamahiam:cart:" + sessionID + ":ts",
	}
}

// Hydrate loads a persisted cart, enforcing the expiry policy. It fails soft
// in every case: unavailable store, expired timestamp, or a payload that is
// not a JSON array all yield an empty item list. Expired carts have both keys
// purged.
func Hydrate(ctx context.Context, store storage.Store, keys Keys, ttl time.Duration, logger *log.Logger) []domain.CartItem {
	if !store.Available(ctx) {
		return nil
	}
	ts, ok := store.Load(ctx, keys.Timestamp)
	if !ok || expired(ts, ttl, time.Now()) {
		store.Remove(ctx, keys.Items)
		store.Remove(ctx, keys.Timestamp)
		return nil
	}
	raw, ok := store.Load(ctx, keys.Items)
	if !ok {
		return nil
	}
	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Printf("cart: discarding corrupt stored cart: %v", err)
		return nil
	}
	return items
}

// expired reports whether a stored timestamp is missing, unreadable, or at
// least ttl old. Unreadable counts as expired.
func expired(ts string, ttl time.Duration, now time.Time) bool {
	written, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return true
	}
	return now.Sub(written) >= ttl
}
