package dynp

import "github.com/google/uuid"

// subscriptionID uniquely identifies a registered callback within a
// collection.
type subscriptionID string

// newSubscriptionID generates a new unique subscription ID.
func newSubscriptionID() subscriptionID {
	return subscriptionID(uuid.New().String())
}

// Subscription is the handle returned by Subscribe. It identifies a single
// registered callback and is passed to Unsubscribe to remove it. The zero
// Subscription is inert: unsubscribing it is a no-op.
type Subscription struct {
	key TypeKey
	id  subscriptionID
}

// subscriber pairs a registered callback with its subscription ID. The
// callback is stored type-erased; the typed Subscribe wrapper restores the
// concrete type before invoking the caller's function.
type subscriber struct {
	id subscriptionID
	fn func(any)
}
