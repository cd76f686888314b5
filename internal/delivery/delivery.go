// Package delivery defines the transport-level entry points of the application.
package delivery

import "context"

// Delivery is a server that accepts requests over some transport.
type Delivery interface {
	// Serve blocks and serves requests until the server is shut down.
	Serve(ctx context.Context) error
}
