package dynp

import "fmt"

// Store is the property storage interface shared by Collection and
// SyncCollection. The typed package-level operations (Assign, Get,
// Subscribe, ...) accept a Store so they work uniformly on both. It cannot
// be implemented outside this package.
type Store interface {
	// Unsubscribe removes the callback identified by sub. Unknown, foreign
	// and zero handles are ignored.
	Unsubscribe(sub Subscription)

	// Len returns the number of stored properties.
	Len() int

	// Keys returns the TypeKeys of all stored properties, sorted by their
	// canonical names.
	Keys() []TypeKey

	assign(key TypeKey, value any)
	lookup(key TypeKey) (propertyValue, bool)
	contains(key TypeKey) bool
	remove(key TypeKey) bool
	subscribe(key TypeKey, fn func(any)) Subscription
	subscriberCount(key TypeKey) int
}

// Assign stores value as the property of type T, replacing any previous
// value, and then synchronously invokes every subscriber registered for T
// in registration order. Each subscriber receives the newly assigned value.
// The value is stored before the first callback runs, so the collection
// stays consistent even if a callback panics.
//
// Values are handed over with Go value semantics. Newtypes over value types
// therefore behave like independent copies; for pointer, slice or map
// values the copy is shallow and caller and subscribers share the
// underlying data.
func Assign[T any](s Store, value T) {
	s.assign(KeyOf[T](), value)
}

// Get returns the stored value of type T. It returns an error wrapping
// ErrNotFound when no value of type T is stored, and an error wrapping
// ErrTypeMismatch when the stored value turns out not to be a T.
func Get[T any](s Store) (T, error) {
	var zero T
	key := KeyOf[T]()

	pv, ok := s.lookup(key)
	if !ok {
		return zero, fmt.Errorf("property %s: %w", key, ErrNotFound)
	}
	if pv.rtype != key.rtype {
		return zero, fmt.Errorf("property %s: stored type is %s: %w", key, pv.rtype, ErrTypeMismatch)
	}
	v, ok := pv.value.(T)
	if !ok {
		return zero, fmt.Errorf("property %s: stored value is %T: %w", key, pv.value, ErrTypeMismatch)
	}
	return v, nil
}

// Contains reports whether a value of type T is currently stored.
func Contains[T any](s Store) bool {
	return s.contains(KeyOf[T]())
}

// Delete removes the stored value of type T, reporting whether a value was
// present. Subscribers for T are unaffected and will be notified again on
// the next Assign.
func Delete[T any](s Store) bool {
	return s.remove(KeyOf[T]())
}

// Subscribe registers fn to be invoked whenever a value of type T is
// assigned. Subscribers for the same type are invoked in registration
// order. Subscribing before the first assignment is valid: fn fires on the
// first and every following assignment, but never retroactively for values
// assigned in the past.
//
// The returned Subscription removes exactly this registration when passed
// to Unsubscribe.
func Subscribe[T any](s Store, fn func(T)) Subscription {
	return s.subscribe(KeyOf[T](), func(v any) {
		fn(v.(T))
	})
}

// SubscriberCount returns the number of subscribers registered for T.
func SubscriberCount[T any](s Store) int {
	return s.subscriberCount(KeyOf[T]())
}
