// Package delivery defines the contract every outward-facing surface of
// the application implements.
package delivery

import "context"

// Delivery is a long-running delivery mechanism, such as an HTTP server.
type Delivery interface {
	// Serve blocks, serving until the context is canceled or the delivery
	// is shut down.
	Serve(ctx context.Context) error
}
