// Package opt provides a value that is either provided or absent.
//
// It distinguishes "not given" from "given as the zero value", which plain
// Go zero values cannot:
//
//	opt.Some("")        // provided, empty
//	opt.None[string]() // absent
package opt

type Value[T any] struct {
	v   T
	set bool
}

func Some[T any](v T) Value[T] {
	return Value[T]{v: v, set: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

// IsSet reports whether a value was provided.
func (o Value[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was provided.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.set
}
