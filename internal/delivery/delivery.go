// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running transport front end (HTTP today). Serve blocks
// until the server stops; shutdown happens through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
