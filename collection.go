// Package dynp implements a dynamic property collection: a heterogeneous
// container that stores at most one value per Go type and notifies
// registered subscribers whenever a property is assigned.
//
// Properties are identified by the type of their value rather than by a
// name, so wrapping primitives in newtypes gives each property a distinct
// identity:
//
//	type Volume int
//	type Balance float64
//
//	c := dynp.New()
//	dynp.Subscribe(c, func(v Volume) { fmt.Println("volume is now", v) })
//	dynp.Assign(c, Volume(10))
//	v, err := dynp.Get[Volume](c)
//
// Because Go methods cannot declare type parameters, the typed operations
// are package-level functions that accept a Store. Collection is the
// single-goroutine implementation; SyncCollection adds locking for
// concurrent use.
package dynp

import (
	"reflect"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// propertyValue is the type-erased cell for one stored property. rtype
// records the static type the value was assigned as; Get checks it against
// the requested type before asserting.
type propertyValue struct {
	rtype reflect.Type
	value any
}

// Collection stores properties keyed by their value type and dispatches
// assignment notifications to subscribers. It is not safe for concurrent
// use; see SyncCollection for a locked variant.
//
// All operations run synchronously on the caller's goroutine, including the
// notification chain triggered by an assignment. Callbacks may call back
// into the same collection: a nested assignment completes its own
// notifications before the outer one resumes with its remaining
// subscribers.
type Collection struct {
	// values holds at most one entry per type.
	values map[TypeKey]propertyValue

	// subs holds the registered callbacks per type, in registration order.
	// An entry exists only while at least one subscriber is registered.
	subs map[TypeKey][]subscriber

	logger zerolog.Logger
}

// New creates an empty Collection.
func New(opts ...Option) *Collection {
	c := &Collection{
		values: make(map[TypeKey]propertyValue),
		subs:   make(map[TypeKey][]subscriber),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// assign stores the value and notifies subscribers in registration order.
// The subscriber list is snapshotted first, so callbacks that subscribe or
// unsubscribe during notification only affect later assignments.
func (c *Collection) assign(key TypeKey, value any) {
	c.values[key] = propertyValue{rtype: key.rtype, value: value}

	subs := slices.Clone(c.subs[key])
	c.logger.Debug().Stringer("property", key).Int("subscribers", len(subs)).Msg("property assigned")

	for _, s := range subs {
		s.fn(value)
	}
}

// lookup returns the stored cell for key.
func (c *Collection) lookup(key TypeKey) (propertyValue, bool) {
	pv, ok := c.values[key]
	return pv, ok
}

// contains reports whether a value is stored for key.
func (c *Collection) contains(key TypeKey) bool {
	_, ok := c.values[key]
	return ok
}

// remove deletes the stored value for key. Subscribers are kept.
func (c *Collection) remove(key TypeKey) bool {
	if _, ok := c.values[key]; !ok {
		return false
	}
	delete(c.values, key)
	c.logger.Debug().Stringer("property", key).Msg("property removed")
	return true
}

// subscribe appends the callback to the subscriber list for key.
func (c *Collection) subscribe(key TypeKey, fn func(any)) Subscription {
	sub := Subscription{key: key, id: newSubscriptionID()}
	c.subs[key] = append(c.subs[key], subscriber{id: sub.id, fn: fn})
	c.logger.Debug().Stringer("property", key).Str("subscription", string(sub.id)).Msg("subscriber registered")
	return sub
}

// subscriberCount returns the number of live subscribers for key.
func (c *Collection) subscriberCount(key TypeKey) int {
	return len(c.subs[key])
}

// Unsubscribe removes the callback identified by sub, preserving the
// relative order of the remaining subscribers. It is safe to call with
// handles that are no longer registered, were issued by another collection,
// or are zero-valued (no-op in those cases).
func (c *Collection) Unsubscribe(sub Subscription) {
	list, ok := c.subs[sub.key]
	if !ok {
		return
	}
	for i, s := range list {
		if s.id == sub.id {
			c.subs[sub.key] = slices.Delete(list, i, i+1)
			if len(c.subs[sub.key]) == 0 {
				delete(c.subs, sub.key)
			}
			c.logger.Debug().Stringer("property", sub.key).Str("subscription", string(sub.id)).Msg("subscriber removed")
			return
		}
	}
}

// Len returns the number of stored properties.
func (c *Collection) Len() int {
	return len(c.values)
}

// Keys returns the TypeKeys of all stored properties, sorted by their
// canonical names.
func (c *Collection) Keys() []TypeKey {
	keys := make([]TypeKey, 0, len(c.values))
	for key := range c.values {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b TypeKey) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}
