package storage

import "unsafe"

// Exclusive owns a single allocation with exactly one logical owner.
// len(data) is the logical length and cap(data) the capacity.
type Exclusive[T any] struct {
	data []T
}

// NewExclusive allocates n zeroed elements.
func NewExclusive[T any](n int) *Exclusive[T] {
	return &Exclusive[T]{data: make([]T, n)}
}

// ExclusiveFrom adopts data without copying. The caller must not retain data.
func ExclusiveFrom[T any](data []T) *Exclusive[T] {
	return &Exclusive[T]{data: data}
}

// Base returns the address of the first element.
func (e *Exclusive[T]) Base() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(e.data))
}

// Offset is always 0: an exclusive handle backs its whole allocation.
func (e *Exclusive[T]) Offset() int { return 0 }

// AllocLen returns the logical length of the allocation.
func (e *Exclusive[T]) AllocLen() int { return len(e.data) }

// Capacity returns the capacity of the allocation.
func (e *Exclusive[T]) Capacity() int { return cap(e.data) }

// IsUnique is always true.
func (e *Exclusive[T]) IsUnique() bool { return true }

// EnsureUnique is a no-op: the allocation is unique by construction.
func (e *Exclusive[T]) EnsureUnique(int) {}

// Release frees the allocation. Releasing twice is safe.
func (e *Exclusive[T]) Release() {
	e.data = nil
}

// take moves the allocation out, leaving the handle empty.
func (e *Exclusive[T]) take() []T {
	data := e.data
	e.data = nil
	return data
}

var _ Backend[int] = (*Exclusive[int])(nil)
