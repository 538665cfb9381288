// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout provides array shapes of fixed and variable rank.
//
// Every shape implements Layout. Fixed-rank shapes (Ix0..Ix4) are Go arrays,
// so they compare with ==; IxDyn carries its rank at runtime.
//
// Example:
//
//	s := layout.Dim2(2, 3)
//	s.Size()        // 6
//	s.RemoveAxis(0) // Ix1{3}
//	s.AddAxis(1, 4) // Ix3{2, 4, 3}
package layout

import (
	"github.com/born-ml/ndarray/internal/layout"
)

// Layout describes the extents of an array, one per axis.
type Layout = layout.Layout

// AxisRemover is a layout with a next smaller rank S.
type AxisRemover[S Layout] = layout.AxisRemover[S]

// AxisAdder is a layout with a next larger rank L.
type AxisAdder[L Layout] = layout.AxisAdder[L]

// Fixed-rank layouts.
type (
	Ix0 = layout.Ix0
	Ix1 = layout.Ix1
	Ix2 = layout.Ix2
	Ix3 = layout.Ix3
	Ix4 = layout.Ix4
)

// IxDyn is a layout whose rank is only known at runtime.
type IxDyn = layout.IxDyn

// Errors returned by layout validation and conversion.
var (
	ErrNegativeExtent = layout.ErrNegativeExtent
	ErrRankMismatch   = layout.ErrRankMismatch
)

// Dim1 creates a rank-1 layout.
func Dim1(n int) Ix1 { return layout.Dim1(n) }

// Dim2 creates a rank-2 layout.
func Dim2(rows, cols int) Ix2 { return layout.Dim2(rows, cols) }

// Dim3 creates a rank-3 layout.
func Dim3(a, b, c int) Ix3 { return layout.Dim3(a, b, c) }

// Dim4 creates a rank-4 layout.
func Dim4(a, b, c, d int) Ix4 { return layout.Dim4(a, b, c, d) }

// Dyn creates a variable-rank layout.
func Dyn(extents ...int) IxDyn { return layout.Dyn(extents...) }

// Equal checks if two layouts of the same type have identical extents.
func Equal[L Layout](a, b L) bool { return layout.Equal(a, b) }

// IntoDyn converts any layout into its variable-rank form.
func IntoDyn(l Layout) IxDyn { return layout.IntoDyn(l) }

// FromDyn converts a variable-rank layout into L.
func FromDyn[L Layout](d IxDyn) (L, error) { return layout.FromDyn[L](d) }
