package dynp

import "errors"

// ErrNotFound is returned by Get when no value is stored for the requested
// type, either because it was never assigned or because it was deleted.
var ErrNotFound = errors.New("property not found")

// ErrTypeMismatch is returned by Get when the stored value does not have the
// requested type. This cannot happen through the public API, which derives
// the storage key and the value type from the same type parameter; it guards
// against internal corruption.
var ErrTypeMismatch = errors.New("property type mismatch")
