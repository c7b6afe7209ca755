package golist

import "github.com/SarthakMakhija/golist/alloc"

// Option configures a List at construction time.
type Option[T any] func(*List[T])

// WithAllocator configures the List with a custom buffer allocator. The list
// keeps the allocator for its lifetime: the initial buffer, every growth and
// the final Release all go through it.
func WithAllocator[T any](allocator alloc.Allocator[T]) Option[T] {
	return func(l *List[T]) {
		l.alloc = allocator
	}
}

// WithEquality configures the List with a custom equality function, used by
// IndexOf and Contains in place of the default Equalable/DeepEqual dispatch.
func WithEquality[T any](equals EqualFn[T]) Option[T] {
	return func(l *List[T]) {
		l.equals = equals
	}
}
