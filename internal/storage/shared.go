package storage

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"
)

// allocation is a reference-counted buffer shared by Shared handles.
type allocation[T any] struct {
	data     []T
	refCount atomic.Int32
}

// newAllocation wraps data with refCount = 1.
func newAllocation[T any](data []T) *allocation[T] {
	a := &allocation[T]{data: data}
	a.refCount.Store(1)
	return a
}

// addRef increments the reference count (for Clone operations).
func (a *allocation[T]) addRef() {
	a.refCount.Add(1)
}

// release decrements the reference count and frees the buffer at zero.
// Returns true if this call freed the buffer.
func (a *allocation[T]) release() bool {
	n := a.refCount.Add(-1)
	if n < 0 {
		panic(fmt.Errorf("refCount %d: %w", n, ErrOverRelease))
	}
	if n == 0 {
		a.data = nil
		return true
	}
	return false
}

// isUnique returns true if only one handle references the buffer.
func (a *allocation[T]) isUnique() bool {
	return a.refCount.Load() == 1
}

// Shared is a handle onto a reference-counted allocation.
//
// Any number of handles may reference the same allocation. Reads never copy;
// EnsureUnique copies the handle's view into a private allocation whenever the
// allocation is referenced elsewhere.
//
// Moving a handle to another goroutine is safe. Two goroutines mutating
// through handles that share an allocation must synchronize externally.
type Shared[T any] struct {
	alloc *allocation[T]
	off   int
	cfg   *Config
}

// NewShared allocates n zeroed elements in a shared allocation.
func NewShared[T any](n int, opts ...Option) *Shared[T] {
	return SharedFrom(make([]T, n), opts...)
}

// SharedFrom adopts data as a shared allocation without copying.
// The caller must not retain data.
func SharedFrom[T any](data []T, opts ...Option) *Shared[T] {
	return &Shared[T]{
		alloc: newAllocation(data),
		cfg:   newConfig(opts),
	}
}

// ShareExclusive moves the allocation of e into shared form without copying.
// e is left empty.
func ShareExclusive[T any](e *Exclusive[T], opts ...Option) *Shared[T] {
	s := SharedFrom(e.take(), opts...)
	s.cfg.Logger.Debug("storage.share", zap.Int("elems", len(s.alloc.data)))
	return s
}

// Clone returns a second handle on the same allocation and view offset.
func (s *Shared[T]) Clone() *Shared[T] {
	s.alloc.addRef()
	return &Shared[T]{
		alloc: s.alloc,
		off:   s.off,
		cfg:   s.cfg,
	}
}

// Base returns the address of the element at Offset().
func (s *Shared[T]) Base() unsafe.Pointer {
	if s.alloc == nil {
		return nil
	}
	return elemPtr(s.alloc.data, s.off)
}

// Offset returns the element offset of the view within the allocation.
func (s *Shared[T]) Offset() int { return s.off }

// AllocLen returns the length of the shared allocation.
func (s *Shared[T]) AllocLen() int {
	if s.alloc == nil {
		return 0
	}
	return len(s.alloc.data)
}

// Refs returns the number of handles referencing the allocation.
func (s *Shared[T]) Refs() int {
	if s.alloc == nil {
		return 0
	}
	return int(s.alloc.refCount.Load())
}

// IsUnique reports whether this is the only handle on the allocation.
func (s *Shared[T]) IsUnique() bool {
	return s.alloc == nil || s.alloc.isUnique()
}

// SameAllocation reports whether s and other reference the same allocation.
func (s *Shared[T]) SameAllocation(other *Shared[T]) bool {
	return s.alloc != nil && s.alloc == other.alloc
}

// Slide moves the view offset by delta elements within the allocation.
// Used by view narrowing; the caller keeps Offset()+n within AllocLen().
func (s *Shared[T]) Slide(delta int) {
	off := s.off + delta
	if off < 0 || off > s.AllocLen() {
		panic(fmt.Sprintf("offset %d outside allocation of %d elements", off, s.AllocLen()))
	}
	s.off = off
}

// Release drops this handle's reference. The last release frees the buffer.
// Releasing the same handle twice is safe.
func (s *Shared[T]) Release() {
	if s.alloc == nil {
		return
	}
	n := len(s.alloc.data)
	if s.alloc.release() {
		s.cfg.Logger.Debug("storage.free", zap.Int("elems", n))
	}
	s.alloc = nil
	s.off = 0
}

// IntoExclusive converts the n-element view of s into an exclusive handle.
// A unique allocation is moved without copying; otherwise the view is copied.
// s is released either way.
func (s *Shared[T]) IntoExclusive(n int) *Exclusive[T] {
	if s.alloc == nil {
		return ExclusiveFrom[T](nil)
	}
	var data []T
	if s.alloc.isUnique() {
		data = s.alloc.data[s.off : s.off+n : s.off+n]
		s.alloc.data = nil
	} else {
		data = make([]T, n)
		copy(data, s.alloc.data[s.off:s.off+n])
	}
	s.Release()
	return ExclusiveFrom(data)
}

var _ Backend[int] = (*Shared[int])(nil)
