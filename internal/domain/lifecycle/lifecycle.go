// Package lifecycle defines hooks for components that need orderly
// startup and shutdown under the fx application lifecycle.
package lifecycle

import (
	"context"
	"time"
)

// DefaultTimeout bounds startup and shutdown hooks.
const DefaultTimeout = 10 * time.Second

// Shutdowner is implemented by infrastructure components that hold
// resources requiring release on application shutdown.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}
