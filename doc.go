// Package golist provides a generic, contiguous, growable sequence
// container with explicit capacity management.
//
// A List owns a single backing buffer and tracks size and capacity
// separately: Size is the count of elements, Capacity the allocated slots.
// Elements live at indices [0, Size()); the slack beyond is never readable.
// Capacity grows on demand and never shrinks while the list is alive.
//
// # Example Usage
//
//	numbers := golist.New[int]()
//	numbers.AddAll(10, 20, 30)
//	numbers.Add(40)
//	first, _ := numbers.First()     // 10
//	removed, _ := numbers.Remove(1) // 20; 30 and 40 shift left
//	even := numbers.Filter(func(n int) bool { return n%2 == 0 })
//
// # Growth
//
// Add doubles the capacity when the buffer is full, so a run of appends
// costs amortized constant time per element. AddAll grows at most once,
// straight to the exact final size. Grow raises the capacity ahead of a
// known load; it never lowers it.
//
// # Errors
//
// Index-taking operations return ErrIndexOutOfBounds for indices outside
// [0, Size()). First, Last, RemoveFirst and RemoveLast return ErrEmptyList
// on an empty list. Both are sentinel errors; match them with errors.Is.
// Appends do not fail.
//
// # Equality
//
// IndexOf and Contains compare with the element type's Equal method when it
// implements Equalable, and with reflect.DeepEqual otherwise. WithEquality
// installs a custom comparison.
//
// # Memory
//
// Buffers come from an alloc.Allocator, by default the Go heap. Release
// hands the buffer back to the allocator when the list is done; pooling
// allocators reuse it. Removal and Clear zero vacated slots so the buffer
// pins no dead references.
//
// # Concurrency
//
// A List is not safe for concurrent use. Guard shared lists externally.
package golist
