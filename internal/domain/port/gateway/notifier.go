package gateway

import "context"

// Notifier delivers a text message to a user. Delivery is best-effort.
type Notifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}
