// Package delivery defines the transport-agnostic server contract. Every
// delivery (HTTP today) is collected into an fx group and started together.
package delivery

import "context"

// Delivery is a long-running request server.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
