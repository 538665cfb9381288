package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/layout"
	"github.com/born-ml/ndarray/internal/storage"
)

// ArrayBase is an owned array: it holds the storage handle and releases it.
//
// Type Parameters:
//   - T: element type
//   - L: layout (Ix0..Ix4 or IxDyn)
//   - B: ownership backend (*storage.Exclusive[T] or *storage.Shared[T])
type ArrayBase[T any, L layout.Layout, B storage.Backend[T]] struct {
	ref RefMut[T, L, B]
}

// Array is an owned array with an exclusively owned allocation.
type Array[T any, L layout.Layout] = ArrayBase[T, L, *storage.Exclusive[T]]

// ArcArray is an owned array whose allocation may be shared with other
// ArcArrays and is copied on write.
type ArcArray[T any, L layout.Layout] = ArrayBase[T, L, *storage.Shared[T]]

// Zeros creates an exclusively owned array of zero values.
//
// Example:
//
//	a, _ := ndarray.Zeros[float32](layout.Dim2(3, 4))
func Zeros[T any, L layout.Layout](l L) (*Array[T, L], error) {
	n, err := storage.Elements(l)
	if err != nil {
		return nil, err
	}
	return &Array[T, L]{ref: RefMut[T, L, *storage.Exclusive[T]]{
		layout: l,
		own:    storage.NewExclusive[T](n),
	}}, nil
}

// FromSlice creates an exclusively owned array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T any, L layout.Layout](data []T, l L) (*Array[T, L], error) {
	n, err := storage.Elements(l)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("layout %v requires %d elements, but got %d: %w",
			l.Extents(), n, len(data), ErrShapeMismatch)
	}
	own := storage.NewExclusive[T](n)
	arr := &Array[T, L]{ref: RefMut[T, L, *storage.Exclusive[T]]{layout: l, own: own}}
	copy(arr.ref.SliceMut(), data)
	return arr, nil
}

// ZerosShared creates a shared array of zero values.
func ZerosShared[T any, L layout.Layout](l L, opts ...storage.Option) (*ArcArray[T, L], error) {
	n, err := storage.Elements(l)
	if err != nil {
		return nil, err
	}
	return &ArcArray[T, L]{ref: RefMut[T, L, *storage.Shared[T]]{
		layout: l,
		own:    storage.NewShared[T](n, opts...),
	}}, nil
}

// FromSliceShared creates a shared array from a Go slice.
// The slice is copied into the array's memory.
func FromSliceShared[T any, L layout.Layout](data []T, l L, opts ...storage.Option) (*ArcArray[T, L], error) {
	arr, err := FromSlice(data, l)
	if err != nil {
		return nil, err
	}
	return IntoShared(arr, opts...), nil
}

// IntoShared converts an exclusively owned array into a shared one without
// copying. a is moved: it must not be used afterwards.
func IntoShared[T any, L layout.Layout](a *Array[T, L], opts ...storage.Option) *ArcArray[T, L] {
	return &ArcArray[T, L]{ref: RefMut[T, L, *storage.Shared[T]]{
		layout: a.ref.layout,
		own:    storage.ShareExclusive(a.ref.own, opts...),
	}}
}

// IntoOwned converts a shared array into an exclusively owned one.
// A uniquely held allocation is moved; otherwise the visible elements are
// copied. a is moved: it must not be used afterwards.
func IntoOwned[T any, L layout.Layout](a *ArcArray[T, L]) *Array[T, L] {
	return &Array[T, L]{ref: RefMut[T, L, *storage.Exclusive[T]]{
		layout: a.ref.layout,
		own:    a.ref.own.IntoExclusive(a.Len()),
	}}
}

// Clone returns a second shared array on the same allocation.
// Nothing is copied until one of them is written through.
//
// Example:
//
//	b := ndarray.Clone(a) // shares the allocation with a
//	p, _ := b.RefMut().FirstMut() // b gets a private copy first
func Clone[T any, L layout.Layout](a *ArcArray[T, L]) *ArcArray[T, L] {
	return &ArcArray[T, L]{ref: RefMut[T, L, *storage.Shared[T]]{
		layout: a.ref.layout,
		own:    a.ref.own.Clone(),
	}}
}

// Window returns a shared array over m.Size() elements of a starting at
// element start, laid out as m. It shares a's allocation.
func Window[T any, L, M layout.Layout](a *ArcArray[T, L], start int, m M) (*ArcArray[T, M], error) {
	n, err := storage.Elements(m)
	if err != nil {
		return nil, err
	}
	if start < 0 || start > a.Len() || n > a.Len()-start {
		return nil, fmt.Errorf("window [%d, %d+%d) of %d elements: %w", start, start, n, a.Len(), ErrOutOfRange)
	}
	own := a.ref.own.Clone()
	own.Slide(start)
	return &ArcArray[T, M]{ref: RefMut[T, M, *storage.Shared[T]]{layout: m, own: own}}, nil
}

// Storage returns the ownership backend of the array.
func (a *ArrayBase[T, L, B]) Storage() B { return a.ref.own }

// RefMut returns the array as a mutable safe reference.
func (a *ArrayBase[T, L, B]) RefMut() *RefMut[T, L, B] { return &a.ref }

// Ref returns the array as a read-only safe reference.
func (a *ArrayBase[T, L, B]) Ref() *Ref[T, L, B] { return a.ref.Ref() }

// RawMut returns the array as a mutable raw reference.
func (a *ArrayBase[T, L, B]) RawMut() *RawRefMut[T, L, B] { return a.ref.RawMut() }

// Raw returns the array as a read-only raw reference.
func (a *ArrayBase[T, L, B]) Raw() *RawRef[T, L, B] { return a.ref.Raw() }

// Layout returns the shape of the array.
func (a *ArrayBase[T, L, B]) Layout() L { return a.ref.layout }

// Len returns the number of elements in the array.
func (a *ArrayBase[T, L, B]) Len() int { return a.Raw().Len() }

// IsEmpty reports whether the array has no elements.
func (a *ArrayBase[T, L, B]) IsEmpty() bool { return a.Raw().IsEmpty() }

// View borrows the array read-only.
func (a *ArrayBase[T, L, B]) View() *View[T, L, B] { return Borrow[T, L, B](a) }

// ViewMut borrows the array for writing.
func (a *ArrayBase[T, L, B]) ViewMut() *ViewMut[T, L, B] { return BorrowMut[T, L, B](a) }

// RawView borrows the array as a raw read view.
func (a *ArrayBase[T, L, B]) RawView() *RawView[T, L, B] { return BorrowRaw[T, L, B](a) }

// RawViewMut borrows the array as a raw write view.
func (a *ArrayBase[T, L, B]) RawViewMut() *RawViewMut[T, L, B] { return BorrowRawMut[T, L, B](a) }

// ToOwned copies the elements into a new exclusively owned array.
func (a *ArrayBase[T, L, B]) ToOwned() *Array[T, L] {
	data := make([]T, a.Len())
	copy(data, a.Ref().Slice())
	return &Array[T, L]{ref: RefMut[T, L, *storage.Exclusive[T]]{
		layout: a.ref.layout,
		own:    storage.ExclusiveFrom(data),
	}}
}

// Release drops the array's claim on its storage.
// Views borrowed from the array must not be used afterwards.
func (a *ArrayBase[T, L, B]) Release() {
	a.ref.own.Release()
}

// String returns a human-readable representation of the array.
func (a *ArrayBase[T, L, B]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v", zero, a.ref.layout.Extents())
}
