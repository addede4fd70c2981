package dynp

import "reflect"

// TypeKey identifies a property by the Go type of its value. Keys are
// comparable and can be used as map keys; two keys are equal exactly when
// they were derived from the same type.
type TypeKey struct {
	rtype reflect.Type
}

// KeyOf returns the TypeKey for T. The mapping is pure and deterministic:
// repeated calls for the same type yield equal keys, and distinct types
// never share a key. Named types are distinct from their underlying type,
// so `type Meters float64` and `type Seconds float64` resolve to different
// keys.
func KeyOf[T any]() TypeKey {
	return TypeKey{rtype: reflect.TypeFor[T]()}
}

// String returns the canonical name of the keyed type, e.g. "main.Volume".
func (k TypeKey) String() string {
	if k.rtype == nil {
		return "<invalid>"
	}
	return k.rtype.String()
}

// IsZero reports whether k is the zero TypeKey. Zero keys never match any
// stored property.
func (k TypeKey) IsZero() bool {
	return k.rtype == nil
}
