// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides owned arrays and views over shared or exclusive
// memory, with copy-on-write for shared allocations.
//
// # Overview
//
// An array is a layout (see package layout) bound to a storage handle.
// Five handle kinds exist:
//
//	Array / ArcArray  owned            safe, read + write
//	View              borrowed         safe, read
//	ViewMut           borrowed         safe, read + write
//	RawView           borrowed         raw,  read
//	RawViewMut        borrowed         raw,  read + write
//
// Each handle grants access by exposing a reference type: RawRef, RawRefMut,
// Ref or RefMut. A handle that cannot write has no method returning a
// writable reference, so misuse fails to compile.
//
// # Copy-on-Write
//
// ArcArray allocations are reference counted. Clone is cheap; the first
// write through a handle whose allocation is referenced elsewhere copies the
// visible elements into a private allocation:
//
//	a, _ := ndarray.FromSliceShared([]int32{1, 2, 3, 4}, layout.Dim1(4))
//	b := ndarray.Clone(a)           // refs == 2, no copy
//	p, _ := a.RefMut().FirstMut()   // a copies, refs of the old allocation == 1
//	*p = 10                          // b still sees 1
//
// Pointers and slices obtained from a writable reference are invalidated by
// the next operation that may copy on write through the same or an aliasing
// handle.
//
// # Concurrency
//
// Handles may be moved between goroutines. Writers racing on handles that
// share an allocation need external synchronization.
package ndarray
