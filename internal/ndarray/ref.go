// Package ndarray binds layouts to storage handles and layers access
// capabilities on top of them.
//
// A reference is a layout paired with a storage handle. The same pair is
// reinterpreted at four capability levels:
//
//	RawRef     addresses only, read
//	RawRefMut  addresses only, read + write (runs copy-on-write)
//	Ref        dereferenceable, read
//	RefMut     dereferenceable, read + write
//
// Only conversions that drop a capability exist. Array handles (the owned
// array and the four views) grant access by exposing one of these levels.
package ndarray

import (
	"unsafe"

	"github.com/born-ml/ndarray/internal/layout"
	"github.com/born-ml/ndarray/internal/storage"
)

// header binds a layout to a storage handle. Invariant: the handle backs at
// least layout.Size() elements starting at its offset.
type header[T any, L layout.Layout, B storage.Backend[T]] struct {
	layout L
	own    B
}

// RawRef is a reference whose elements may not be safe to dereference.
//
// It exposes addresses only. Callers that dereference them must know that the
// memory is live, for example because the RawRef was derived from a live
// array.
type RawRef[T any, L layout.Layout, B storage.Backend[T]] header[T, L, B]

// RawRefMut is a RawRef that may also hand out mutable addresses.
type RawRefMut[T any, L layout.Layout, B storage.Backend[T]] header[T, L, B]

// Ref is a reference whose elements are safe to read.
type Ref[T any, L layout.Layout, B storage.Backend[T]] header[T, L, B]

// RefMut is a reference whose elements are safe to read and write.
type RefMut[T any, L layout.Layout, B storage.Backend[T]] header[T, L, B]

// Layout returns the layout of the referenced array.
func (r *RawRef[T, L, B]) Layout() L { return r.layout }

// Len returns the number of elements.
func (r *RawRef[T, L, B]) Len() int { return r.layout.Size() }

// IsEmpty reports whether the array has no elements.
func (r *RawRef[T, L, B]) IsEmpty() bool { return r.Len() == 0 }

// Ptr returns the address of the first element. No validity check is made.
func (r *RawRef[T, L, B]) Ptr() unsafe.Pointer { return r.own.Base() }

// AsPtr returns Ptr as a typed pointer. It must not be written through.
func (r *RawRef[T, L, B]) AsPtr() *T { return (*T)(r.Ptr()) }

// Raw drops the write capability.
func (r *RawRefMut[T, L, B]) Raw() *RawRef[T, L, B] { return (*RawRef[T, L, B])(r) }

// IsUnique reports whether the storage is referenced by this handle only.
func (r *RawRefMut[T, L, B]) IsUnique() bool { return r.own.IsUnique() }

// EnsureUnique runs copy-on-write on the storage if it is shared.
func (r *RawRefMut[T, L, B]) EnsureUnique() { r.own.EnsureUnique(r.layout.Size()) }

// PtrMut makes the storage unique and returns the address of the first element.
// The address is invalidated by the next copy-on-write on this or an aliasing handle.
func (r *RawRefMut[T, L, B]) PtrMut() unsafe.Pointer {
	r.EnsureUnique()
	return r.own.Base()
}

// AsMutPtr returns PtrMut as a typed pointer.
func (r *RawRefMut[T, L, B]) AsMutPtr() *T { return (*T)(r.PtrMut()) }

// Raw drops the dereference guarantee.
func (r *Ref[T, L, B]) Raw() *RawRef[T, L, B] { return (*RawRef[T, L, B])(r) }

// First returns the element at the lowest address, or false if the array is empty.
func (r *Ref[T, L, B]) First() (T, bool) {
	raw := r.Raw()
	if raw.IsEmpty() {
		var zero T
		return zero, false
	}
	return *raw.AsPtr(), true
}

// Slice returns the elements as a slice sharing the array memory (zero-copy).
// The slice must not be written to.
func (r *Ref[T, L, B]) Slice() []T {
	raw := r.Raw()
	n := raw.Len()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bound by layout size
	return unsafe.Slice(raw.AsPtr(), n)
}

// Ref drops the write capability.
func (r *RefMut[T, L, B]) Ref() *Ref[T, L, B] { return (*Ref[T, L, B])(r) }

// RawMut drops the dereference guarantee.
func (r *RefMut[T, L, B]) RawMut() *RawRefMut[T, L, B] { return (*RawRefMut[T, L, B])(r) }

// Raw drops both the write capability and the dereference guarantee.
func (r *RefMut[T, L, B]) Raw() *RawRef[T, L, B] { return (*RawRef[T, L, B])(r) }

// FirstMut returns a pointer to the element at the lowest address, running
// copy-on-write first. Returns false if the array is empty.
func (r *RefMut[T, L, B]) FirstMut() (*T, bool) {
	if r.Raw().IsEmpty() {
		return nil, false
	}
	return r.RawMut().AsMutPtr(), true
}

// SliceMut returns the elements as a writable slice, running copy-on-write first.
// The slice is invalidated by the next copy-on-write on an aliasing handle.
func (r *RefMut[T, L, B]) SliceMut() []T {
	n := r.Raw().Len()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bound by layout size
	return unsafe.Slice(r.RawMut().AsMutPtr(), n)
}
