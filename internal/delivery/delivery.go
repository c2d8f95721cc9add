// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, push worker) started
// by the application lifecycle. Serve blocks until ctx is cancelled or the
// server fails.
type Delivery interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
