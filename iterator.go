package golist

import "iter"

// Iterator is a forward-only cursor over a point-in-time view of a list.
//
// The cursor captures the backing buffer and size at creation. A growth of
// the source list swaps its buffer, so a live iterator keeps reading the
// buffer it captured; in-place mutation through Set or Remove may or may
// not be visible. Mutating a list mid-traversal is unsupported: the
// elements observed are unspecified, though never out of the captured
// buffer's bounds. Iterators do not rewind; take a fresh one to traverse
// again.
type Iterator[T any] struct {
	snapshot []T
	position int
}

// Iterator returns a cursor positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{snapshot: l.view()}
}

// HasNext reports whether elements remain. Call it before every Next; Next
// past the end is a contract violation.
func (it *Iterator[T]) HasNext() bool {
	return it.position < len(it.snapshot)
}

// Next returns the element under the cursor and moves past it. It panics
// when HasNext is false.
func (it *Iterator[T]) Next() T {
	element := it.snapshot[it.position]
	it.position++
	return element
}

// Index returns the position of the element the next call to Next returns.
func (it *Iterator[T]) Index() int {
	return it.position
}

// Values returns the elements as a sequence usable with range. The
// sequence iterates a view captured when Values is called, with the same
// snapshot semantics as Iterator.
func (l *List[T]) Values() iter.Seq[T] {
	snapshot := l.view()
	return func(yield func(T) bool) {
		for i := range snapshot {
			if !yield(snapshot[i]) {
				return
			}
		}
	}
}
