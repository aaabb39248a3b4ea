// Package delivery defines the contract shared by all serving surfaces.
package delivery

import "context"

// Delivery is a long-running serving surface started by the application
// entrypoint, such as an HTTP server or a task queue worker.
type Delivery interface {
	Serve(ctx context.Context) error
}
