package golist

// Predicate reports whether an element satisfies a condition. Predicates
// receive elements by value and never see the backing buffer.
type Predicate[T any] func(T) bool

// Any reports whether predicate holds for at least one element. The scan
// runs left to right and stops at the first match. An empty list yields
// false.
func (l *List[T]) Any(predicate Predicate[T]) bool {
	for i := 0; i < l.size; i++ {
		if predicate(l.elements[i]) {
			return true
		}
	}
	return false
}

// All reports whether predicate holds for every element. The scan runs left
// to right and stops at the first failure. An empty list yields true.
func (l *List[T]) All(predicate Predicate[T]) bool {
	for i := 0; i < l.size; i++ {
		if !predicate(l.elements[i]) {
			return false
		}
	}
	return true
}

// IndexOf returns the index of the first element equal to value and true,
// or zero and false when no element matches. Equality is the list's
// equality function; see Equalable and WithEquality.
func (l *List[T]) IndexOf(value T) (int, bool) {
	equals := l.equality()
	for i := 0; i < l.size; i++ {
		if equals(l.elements[i], value) {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether some element equals value.
func (l *List[T]) Contains(value T) bool {
	_, found := l.IndexOf(value)
	return found
}

// Filter returns a new list holding, in their original order, the elements
// satisfying predicate. The receiver is not touched. The result inherits
// the receiver's allocator and equality function, owns an independent
// buffer and is released independently.
func (l *List[T]) Filter(predicate Predicate[T]) *List[T] {
	filtered := New[T](WithAllocator[T](l.alloc), WithEquality[T](l.equals))
	for i := 0; i < l.size; i++ {
		if predicate(l.elements[i]) {
			filtered.Add(l.elements[i])
		}
	}
	return filtered
}

// ForEach invokes action once per element, left to right. It exists for
// side effects: there is no accumulator and no early stop. Callers needing
// either close over their own state or range over Values.
func (l *List[T]) ForEach(action func(T)) {
	for i := 0; i < l.size; i++ {
		action(l.elements[i])
	}
}
