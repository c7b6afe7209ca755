// Package alloc provides the buffer allocation strategies behind golist.
//
// A list routes every buffer acquisition through a single Allocator: the
// initial allocation at construction, each growth, and the final release.
// The default strategy is plain heap allocation with garbage-collected
// reclamation. Pool keeps freed buffers on a free list for reuse, which
// pays off when lists of similar sizes are built and released repeatedly.
// Counting wraps any allocator to observe allocation traffic.
package alloc

import "sync"

// Allocator hands out and reclaims element buffers. Allocate returns a
// zeroed buffer of exactly the requested length; Free reclaims a buffer
// previously handed out. A buffer must not be used after Free.
type Allocator[T any] interface {
	Allocate(n int) []T
	Free(buf []T)
}

// Heap returns the default allocator. Buffers come from the Go heap and
// Free is a no-op, leaving reclamation to the garbage collector.
func Heap[T any]() Allocator[T] {
	return heap[T]{}
}

type heap[T any] struct{}

func (heap[T]) Allocate(n int) []T { return make([]T, n) }

func (heap[T]) Free(buf []T) {}

// Pool is an allocator that retains freed buffers and serves later
// allocations from them when a retained buffer is large enough. A Pool may
// be shared across lists and goroutines.
type Pool[T any] struct {
	mu   sync.Mutex
	free [][]T
}

// NewPool returns an empty Pool. It allocates from the heap until buffers
// are freed back to it.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Allocate reuses the first retained buffer with capacity n or more,
// zeroed and resliced to length n. It falls back to the heap when no
// retained buffer fits.
func (p *Pool[T]) Allocate(n int) []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, buf := range p.free {
		if cap(buf) >= n {
			p.free = append(p.free[:i], p.free[i+1:]...)
			recycled := buf[:n]
			var zero T
			for j := range recycled {
				recycled[j] = zero
			}
			return recycled
		}
	}
	return make([]T, n)
}

// Free retains buf for reuse. Zero-capacity buffers are discarded.
func (p *Pool[T]) Free(buf []T) {
	if cap(buf) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, buf[:cap(buf)])
}

// Counting wraps an allocator and counts the calls flowing through it. It
// exists for tests and diagnostics that need to observe how often a list
// grows.
type Counting[T any] struct {
	inner  Allocator[T]
	allocs int
	frees  int
}

// NewCounting wraps inner. A nil inner counts over the heap allocator.
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	if inner == nil {
		inner = Heap[T]()
	}
	return &Counting[T]{inner: inner}
}

// Allocate delegates to the wrapped allocator and records the call.
func (c *Counting[T]) Allocate(n int) []T {
	c.allocs++
	return c.inner.Allocate(n)
}

// Free delegates to the wrapped allocator and records the call.
func (c *Counting[T]) Free(buf []T) {
	c.frees++
	c.inner.Free(buf)
}

// Allocations returns how many times Allocate has been called.
func (c *Counting[T]) Allocations() int { return c.allocs }

// Frees returns how many times Free has been called.
func (c *Counting[T]) Frees() int { return c.frees }
