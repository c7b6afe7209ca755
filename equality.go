package golist

import "reflect"

// Equalable is implemented by element types that carry their own notion of
// equality. When the element type implements it, IndexOf and Contains use
// Equal instead of deep value comparison.
type Equalable[T any] interface {
	Equal(other T) bool
}

// EqualFn compares two elements. WithEquality installs a custom one.
type EqualFn[T any] func(a, b T) bool

// defaultEquality prefers the element's own Equal method and falls back to
// reflect.DeepEqual. The dispatch happens per comparison, so it works for
// any T without constraining the type parameter to comparable.
func defaultEquality[T any](a, b T) bool {
	if eq, ok := any(a).(Equalable[T]); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
