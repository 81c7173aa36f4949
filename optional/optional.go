// Package optional models a value that may be absent. The tree returns it wherever a
// lookup or mutation can legitimately miss, so callers never see sentinel zero values.
package optional

import "fmt"

// Value holds either one T (Some) or nothing (None).
type Value[T any] struct {
	value T
	isSet bool
}

// Some wraps value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None returns the empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty returns true if a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it was present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value, panicking on None.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value, or defaultValue on None.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// String renders "Some(v)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms a present value with f and passes None through.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}
