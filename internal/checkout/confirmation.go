package checkout

import (
	"context"
	"time"

	"mamahiam-storefront/internal/domain"
)

// DefaultGrace is how long the confirmation view waits for a payload before
// redirecting home.
const DefaultGrace = time.Second

// AwaitConfirmation waits up to the grace window for a confirmation to become
// available. A missing payload is "not yet available" for the duration of the
// window and "redirect home" after it, never an error. The second return
// value is false when the caller should redirect.
func AwaitConfirmation(ctx context.Context, c *Controller, grace time.Duration) (*domain.OrderConfirmation, bool) {
	if grace <= 0 {
		grace = DefaultGrace
	}
	if conf, ok := c.LatestConfirmation(); ok {
		return conf, true
	}

	deadline := time.NewTimer(grace)
	defer deadline.Stop()
	poll := time.NewTicker(50 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, false
		case <-deadline.C:
			return nil, false
		case <-poll.C:
			if conf, ok := c.LatestConfirmation(); ok {
				return conf, true
			}
		}
	}
}
