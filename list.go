package golist

import (
	"fmt"

	"github.com/SarthakMakhija/golist/alloc"
)

// DefaultCapacity is the number of element slots allocated by New.
const DefaultCapacity = 10

// List is a generic, contiguous, growable sequence container.
// Elements occupy the index range [0, Size()) of a single backing buffer;
// the slots beyond Size() are spare capacity, never readable through the API.
// Capacity grows on demand and never shrinks for the lifetime of the list.
// Not safe for concurrent use; callers provide their own synchronization.
type List[T any] struct {
	elements []T // backing buffer; len(elements) is the capacity
	size     int // count of valid elements, also the next append position
	alloc    alloc.Allocator[T]
	equals   EqualFn[T]
}

// New creates an empty list with DefaultCapacity slots.
func New[T any](opts ...Option[T]) *List[T] {
	return NewWithCapacity[T](DefaultCapacity, opts...)
}

// NewWithCapacity creates an empty list backed by a buffer of exactly
// capacity slots. A negative capacity is treated as zero; a zero-capacity
// list grows on first append.
func NewWithCapacity[T any](capacity int, opts ...Option[T]) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	l.elements = l.allocator().Allocate(capacity)
	return l
}

// allocator returns the configured allocator, defaulting to the heap. The
// lazy default keeps the zero value of List usable.
func (l *List[T]) allocator() alloc.Allocator[T] {
	if l.alloc == nil {
		l.alloc = alloc.Heap[T]()
	}
	return l.alloc
}

// equality returns the configured equality function, defaulting to the
// Equalable/DeepEqual dispatch.
func (l *List[T]) equality() EqualFn[T] {
	if l.equals == nil {
		l.equals = defaultEquality[T]
	}
	return l.equals
}

// Size returns the number of elements, never the capacity.
func (l *List[T]) Size() int {
	return l.size
}

// Capacity returns the number of allocated element slots.
func (l *List[T]) Capacity() int {
	return len(l.elements)
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Add appends value at index Size(). A full buffer doubles its capacity
// first (a zero capacity grows to one), which amortizes a long run of
// appends to constant time per element.
func (l *List[T]) Add(value T) {
	if l.size == len(l.elements) {
		l.Grow(max(2*len(l.elements), 1))
	}
	l.elements[l.size] = value
	l.size++
}

// AddAll appends values in argument order. Calling it with no values is a
// no-op. When the spare capacity cannot hold all values the buffer grows
// exactly once, straight to the final size rather than by doubling.
func (l *List[T]) AddAll(values ...T) {
	if len(values) == 0 {
		return
	}
	if l.size+len(values) > len(l.elements) {
		l.Grow(l.size + len(values))
	}
	copy(l.elements[l.size:], values)
	l.size += len(values)
}

// Remove deletes the element at index and returns it. Elements after index
// shift one slot left, preserving their order; removing the last index
// shifts nothing. Cost is proportional to Size() minus index.
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if err := l.boundsCheck("remove", index); err != nil {
		return zero, err
	}
	removed := l.elements[index]
	copy(l.elements[index:], l.elements[index+1:l.size])
	l.size--
	l.elements[l.size] = zero // release the vacated slot's reference
	return removed, nil
}

// RemoveFirst removes and returns the element at index zero.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("remove first: %w", ErrEmptyList)
	}
	return l.Remove(0)
}

// RemoveLast removes and returns the element at the highest valid index.
func (l *List[T]) RemoveLast() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("remove last: %w", ErrEmptyList)
	}
	return l.Remove(l.size - 1)
}

// Grow ensures the backing buffer holds at least capacity slots. A capacity
// at or below the current one is a no-op: the buffer never shrinks. On
// growth the valid elements are copied into a fresh buffer and the old one
// is returned to the allocator.
func (l *List[T]) Grow(capacity int) {
	if capacity <= len(l.elements) {
		return
	}
	grown := l.allocator().Allocate(capacity)
	copy(grown, l.elements[:l.size])
	l.alloc.Free(l.elements)
	l.elements = grown
}

// Clear removes every element but keeps the buffer. The vacated slots are
// zeroed so the buffer retains no references to removed elements.
func (l *List[T]) Clear() {
	var zero T
	for i := 0; i < l.size; i++ {
		l.elements[i] = zero
	}
	l.size = 0
}

// Release returns the backing buffer to the allocator and leaves the list
// empty with zero capacity. Release pairs with construction; using the list
// afterwards allocates from scratch.
func (l *List[T]) Release() {
	l.allocator().Free(l.elements)
	l.elements = nil
	l.size = 0
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if err := l.boundsCheck("get", index); err != nil {
		return zero, err
	}
	return l.elements[index], nil
}

// Set overwrites the element at index in place. Size and capacity do not
// change; Set never extends the list.
func (l *List[T]) Set(index int, value T) error {
	if err := l.boundsCheck("set", index); err != nil {
		return err
	}
	l.elements[index] = value
	return nil
}

// First returns the element at index zero.
func (l *List[T]) First() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("first: %w", ErrEmptyList)
	}
	return l.elements[0], nil
}

// Last returns the element at the highest valid index.
func (l *List[T]) Last() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("last: %w", ErrEmptyList)
	}
	return l.elements[l.size-1], nil
}

// ToSlice returns the elements as a freshly allocated plain slice. Mutating
// the copy does not affect the list.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.size)
	copy(out, l.elements)
	return out
}

// view returns the valid prefix of the buffer, capped so appends by a
// holder cannot reach the spare capacity. Always non-nil, so codecs render
// an empty list as an empty sequence.
func (l *List[T]) view() []T {
	if l.elements == nil {
		return []T{}
	}
	return l.elements[:l.size:l.size]
}

func (l *List[T]) boundsCheck(op string, index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%s: index %d outside [0, %d): %w", op, index, l.size, ErrIndexOutOfBounds)
	}
	return nil
}
