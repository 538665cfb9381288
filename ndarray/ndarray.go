// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/storage"
	"github.com/born-ml/ndarray/layout"
)

// Backend is an ownership strategy for a buffer of T.
type Backend[T any] = storage.Backend[T]

// Exclusive is the single-owner backend.
type Exclusive[T any] = storage.Exclusive[T]

// Shared is the reference-counted, copy-on-write backend.
type Shared[T any] = storage.Shared[T]

// ArrayBase is an owned array over backend B.
type ArrayBase[T any, L layout.Layout, B Backend[T]] = ndarray.ArrayBase[T, L, B]

// Array is an owned array with an exclusively owned allocation.
type Array[T any, L layout.Layout] = ndarray.Array[T, L]

// ArcArray is an owned array with a shared, copy-on-write allocation.
type ArcArray[T any, L layout.Layout] = ndarray.ArcArray[T, L]

// View is a read-only view of an existing array.
type View[T any, L layout.Layout, B Backend[T]] = ndarray.View[T, L, B]

// ViewMut is a read-write view of an existing array.
type ViewMut[T any, L layout.Layout, B Backend[T]] = ndarray.ViewMut[T, L, B]

// RawView is a read-only view whose elements may not be safe to dereference.
type RawView[T any, L layout.Layout, B Backend[T]] = ndarray.RawView[T, L, B]

// RawViewMut is a read-write view whose elements may not be safe to dereference.
type RawViewMut[T any, L layout.Layout, B Backend[T]] = ndarray.RawViewMut[T, L, B]

// Reference levels.
type (
	RawRef[T any, L layout.Layout, B Backend[T]]    = ndarray.RawRef[T, L, B]
	RawRefMut[T any, L layout.Layout, B Backend[T]] = ndarray.RawRefMut[T, L, B]
	Ref[T any, L layout.Layout, B Backend[T]]       = ndarray.Ref[T, L, B]
	RefMut[T any, L layout.Layout, B Backend[T]]    = ndarray.RefMut[T, L, B]
)

// Capability interfaces.
type (
	RawAccess[T any, L layout.Layout, B Backend[T]]      = ndarray.RawAccess[T, L, B]
	SafeAccess[T any, L layout.Layout, B Backend[T]]     = ndarray.SafeAccess[T, L, B]
	RawWriteAccess[T any, L layout.Layout, B Backend[T]] = ndarray.RawWriteAccess[T, L, B]
	WriteAccess[T any, L layout.Layout, B Backend[T]]    = ndarray.WriteAccess[T, L, B]
)

// Copy-on-write configuration.
type (
	Option     = storage.Option
	CopyPolicy = storage.CopyPolicy
)

// Copy-on-write policies.
const (
	CopyView CopyPolicy = storage.CopyView
	CopyTail CopyPolicy = storage.CopyTail
)

// Options for shared arrays.
var (
	WithPolicy   = storage.WithPolicy
	WithParallel = storage.WithParallel
	WithLogger   = storage.WithLogger
)

// Errors.
var (
	ErrShapeMismatch  = ndarray.ErrShapeMismatch
	ErrAxisNotUnit    = ndarray.ErrAxisNotUnit
	ErrAxisOutOfRange = ndarray.ErrAxisOutOfRange
	ErrOutOfRange     = ndarray.ErrOutOfRange
	ErrSizeOverflow   = storage.ErrSizeOverflow
)

// Zeros creates an exclusively owned array of zero values.
func Zeros[T any, L layout.Layout](l L) (*Array[T, L], error) {
	return ndarray.Zeros[T](l)
}

// FromSlice creates an exclusively owned array from a copy of data.
func FromSlice[T any, L layout.Layout](data []T, l L) (*Array[T, L], error) {
	return ndarray.FromSlice(data, l)
}

// ZerosShared creates a shared array of zero values.
func ZerosShared[T any, L layout.Layout](l L, opts ...Option) (*ArcArray[T, L], error) {
	return ndarray.ZerosShared[T](l, opts...)
}

// FromSliceShared creates a shared array from a copy of data.
func FromSliceShared[T any, L layout.Layout](data []T, l L, opts ...Option) (*ArcArray[T, L], error) {
	return ndarray.FromSliceShared(data, l, opts...)
}

// IntoShared converts an exclusively owned array into a shared one without copying.
func IntoShared[T any, L layout.Layout](a *Array[T, L], opts ...Option) *ArcArray[T, L] {
	return ndarray.IntoShared(a, opts...)
}

// IntoOwned converts a shared array into an exclusively owned one.
func IntoOwned[T any, L layout.Layout](a *ArcArray[T, L]) *Array[T, L] {
	return ndarray.IntoOwned(a)
}

// Clone returns a second shared array on the same allocation.
func Clone[T any, L layout.Layout](a *ArcArray[T, L]) *ArcArray[T, L] {
	return ndarray.Clone(a)
}

// Window returns a shared array over part of a's allocation.
func Window[T any, L, M layout.Layout](a *ArcArray[T, L], start int, m M) (*ArcArray[T, M], error) {
	return ndarray.Window(a, start, m)
}

// Borrow creates a read view of src.
func Borrow[T any, L layout.Layout, B Backend[T]](src SafeAccess[T, L, B]) *View[T, L, B] {
	return ndarray.Borrow[T, L, B](src)
}

// BorrowMut creates a write view of src.
func BorrowMut[T any, L layout.Layout, B Backend[T]](src WriteAccess[T, L, B]) *ViewMut[T, L, B] {
	return ndarray.BorrowMut[T, L, B](src)
}

// BorrowRaw creates a raw read view of src.
func BorrowRaw[T any, L layout.Layout, B Backend[T]](src RawAccess[T, L, B]) *RawView[T, L, B] {
	return ndarray.BorrowRaw[T, L, B](src)
}

// BorrowRawMut creates a raw write view of src.
func BorrowRawMut[T any, L layout.Layout, B Backend[T]](src RawWriteAccess[T, L, B]) *RawViewMut[T, L, B] {
	return ndarray.BorrowRawMut[T, L, B](src)
}

// InsertAxis returns a view of v with a length-1 axis inserted at axis.
func InsertAxis[T any, L layout.AxisAdder[M], M layout.Layout, B Backend[T]](v *View[T, L, B], axis int) *View[T, M, B] {
	return ndarray.InsertAxis[T, L, M, B](v, axis)
}

// RemoveAxis returns a view of v with the length-1 axis removed.
func RemoveAxis[T any, L layout.AxisRemover[S], S layout.Layout, B Backend[T]](v *View[T, L, B], axis int) (*View[T, S, B], error) {
	return ndarray.RemoveAxis[T, L, S, B](v, axis)
}

// InsertAxisMut returns a write view of v with a length-1 axis inserted at axis.
func InsertAxisMut[T any, L layout.AxisAdder[M], M layout.Layout, B Backend[T]](v *ViewMut[T, L, B], axis int) *ViewMut[T, M, B] {
	return ndarray.InsertAxisMut[T, L, M, B](v, axis)
}

// RemoveAxisMut returns a write view of v with the length-1 axis removed.
func RemoveAxisMut[T any, L layout.AxisRemover[S], S layout.Layout, B Backend[T]](v *ViewMut[T, L, B], axis int) (*ViewMut[T, S, B], error) {
	return ndarray.RemoveAxisMut[T, L, S, B](v, axis)
}
