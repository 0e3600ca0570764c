package providers

import "context"

// Navigator moves the client to the screen named by action. It is
// implemented by embedding clients; the server only returns the action.
type Navigator interface {
	Navigate(ctx context.Context, action string) error
}
