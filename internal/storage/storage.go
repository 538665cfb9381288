// Package storage provides the ownership backends behind owned arrays.
//
// Two strategies exist:
//   - Exclusive: one allocation, one owner. Always unique.
//   - Shared: a reference-counted allocation that several handles may hold.
//     Mutation goes through EnsureUnique, which copies on write.
//
// Every handle is represented as (allocation, element offset). The view that a
// handle backs is the n elements starting at that offset, where n comes from
// the layout of the reference that holds the handle.
package storage

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/born-ml/ndarray/internal/layout"
)

// Common errors.
var (
	ErrSizeOverflow = errors.New("element count overflows int")
	ErrOverRelease  = errors.New("allocation released too many times")
)

// Backend is an ownership strategy for a buffer of T.
//
// Implementations:
//   - *Exclusive[T]: single owner
//   - *Shared[T]: reference counted, copy-on-write
type Backend[T any] interface {
	// Base returns the address of the element at Offset().
	// The address is not checked; it is nil for a released handle.
	Base() unsafe.Pointer

	// Offset returns the element offset of the view within the allocation.
	Offset() int

	// AllocLen returns the allocation length in elements.
	AllocLen() int

	// IsUnique reports whether no other handle references the allocation.
	IsUnique() bool

	// EnsureUnique makes the n elements at Offset() private to this handle.
	// Offset()+n must not exceed AllocLen().
	EnsureUnique(n int)

	// Release drops this handle's claim on the allocation.
	Release()
}

// Elements returns the element count for l, validating extents and guarding
// against overflow. Allocations sized from untrusted layouts go through here.
func Elements(l layout.Layout) (int, error) {
	if err := l.Validate(); err != nil {
		return 0, fmt.Errorf("invalid layout: %w", err)
	}
	n, ok := l.SizeChecked()
	if !ok {
		return 0, fmt.Errorf("layout %v: %w", l.Extents(), ErrSizeOverflow)
	}
	return n, nil
}

// elemPtr returns &data[off] without a bounds check. An offset at the end of
// the allocation (an empty window) yields the allocation base, so no pointer
// past the end is ever formed.
func elemPtr[T any](data []T, off int) unsafe.Pointer {
	if off >= len(data) {
		return unsafe.Pointer(unsafe.SliceData(data))
	}
	var zero T
	//nolint:gosec // offset arithmetic inside an allocation of known length
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(data)), uintptr(off)*unsafe.Sizeof(zero))
}
