// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound server (HTTP, worker, ...). Instances
// are collected in the "deliveries" Fx group and started by the composition
// root.
type Delivery interface {
	// Serve blocks, accepting work until the server is shut down.
	Serve(ctx context.Context) error
}
