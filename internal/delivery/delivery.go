// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport component such as an HTTP server or
// background scheduler. Serve blocks until the component stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
