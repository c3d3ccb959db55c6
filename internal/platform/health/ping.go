package health

import "context"

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	HealthPing(ctx context.Context) error
}
