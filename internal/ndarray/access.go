package ndarray

import (
	"github.com/born-ml/ndarray/internal/layout"
	"github.com/born-ml/ndarray/internal/storage"
)

// RawAccess is implemented by every array handle.
type RawAccess[T any, L layout.Layout, B storage.Backend[T]] interface {
	Raw() *RawRef[T, L, B]
}

// SafeAccess is implemented by handles whose elements are safe to read.
type SafeAccess[T any, L layout.Layout, B storage.Backend[T]] interface {
	RawAccess[T, L, B]
	Ref() *Ref[T, L, B]
}

// RawWriteAccess is implemented by handles that may hand out mutable addresses.
type RawWriteAccess[T any, L layout.Layout, B storage.Backend[T]] interface {
	RawAccess[T, L, B]
	RawMut() *RawRefMut[T, L, B]
}

// WriteAccess is implemented by handles whose elements are safe to read and write.
type WriteAccess[T any, L layout.Layout, B storage.Backend[T]] interface {
	SafeAccess[T, L, B]
	RawMut() *RawRefMut[T, L, B]
	RefMut() *RefMut[T, L, B]
}

// Borrow creates a read view of src.
func Borrow[T any, L layout.Layout, B storage.Backend[T]](src SafeAccess[T, L, B]) *View[T, L, B] {
	return &View[T, L, B]{ref: *src.Ref()}
}

// BorrowMut creates a write view of src. The view shares src's storage
// handle, so copy-on-write through the view also repoints src.
func BorrowMut[T any, L layout.Layout, B storage.Backend[T]](src WriteAccess[T, L, B]) *ViewMut[T, L, B] {
	return &ViewMut[T, L, B]{ref: *src.RefMut()}
}

// BorrowRaw creates a raw read view of src.
func BorrowRaw[T any, L layout.Layout, B storage.Backend[T]](src RawAccess[T, L, B]) *RawView[T, L, B] {
	return &RawView[T, L, B]{ref: *src.Raw()}
}

// BorrowRawMut creates a raw write view of src.
func BorrowRawMut[T any, L layout.Layout, B storage.Backend[T]](src RawWriteAccess[T, L, B]) *RawViewMut[T, L, B] {
	return &RawViewMut[T, L, B]{ref: *src.RawMut()}
}

// Capability rows for each handle.
var (
	_ WriteAccess[int, layout.Ix1, *storage.Exclusive[int]]    = (*Array[int, layout.Ix1])(nil)
	_ WriteAccess[int, layout.Ix1, *storage.Shared[int]]       = (*ArcArray[int, layout.Ix1])(nil)
	_ SafeAccess[int, layout.Ix1, *storage.Shared[int]]        = (*View[int, layout.Ix1, *storage.Shared[int]])(nil)
	_ WriteAccess[int, layout.Ix1, *storage.Shared[int]]       = (*ViewMut[int, layout.Ix1, *storage.Shared[int]])(nil)
	_ RawAccess[int, layout.Ix1, *storage.Shared[int]]         = (*RawView[int, layout.Ix1, *storage.Shared[int]])(nil)
	_ RawWriteAccess[int, layout.Ix1, *storage.Shared[int]]    = (*RawViewMut[int, layout.Ix1, *storage.Shared[int]])(nil)
	_ RawWriteAccess[int, layout.Ix1, *storage.Exclusive[int]] = (*ViewMut[int, layout.Ix1, *storage.Exclusive[int]])(nil)
)
