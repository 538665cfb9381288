// Package layout provides the shape abstraction shared by every array handle.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// Common errors.
var (
	ErrNegativeExtent = errors.New("negative extent")
	ErrRankMismatch   = errors.New("rank mismatch")
)

// Layout describes the extents of an array, one per axis.
//
// Implementations:
//   - Ix0..Ix4: fixed rank, the axis count is part of the type
//   - IxDyn: variable rank, the axis count is carried at runtime
type Layout interface {
	// NDim returns the number of axes.
	NDim() int

	// StaticNDim reports the rank fixed by the type, or false for variable rank.
	StaticNDim() (int, bool)

	// Size returns the product of the extents (1 for rank 0).
	// The product must fit in an int; use SizeChecked for untrusted shapes.
	Size() int

	// SizeChecked returns the product of the extents, or false on overflow.
	SizeChecked() (int, bool)

	// Extents returns the extents in axis order.
	Extents() []int

	// Validate checks that no extent is negative.
	Validate() error
}

// Equal checks if two layouts of the same type have identical extents.
func Equal[L Layout](a, b L) bool {
	return extentsEqual(a.Extents(), b.Extents())
}

// IntoDyn converts any layout into its variable-rank form.
func IntoDyn(l Layout) IxDyn {
	return IxDyn(append([]int(nil), l.Extents()...))
}

func extentsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func size(extents []int) int {
	n := 1
	for _, e := range extents {
		n *= e
	}
	return n
}

func sizeChecked(extents []int) (int, bool) {
	n := 1
	for _, e := range extents {
		if e < 0 {
			return 0, false
		}
		if e != 0 && n > math.MaxInt/e {
			return 0, false
		}
		n *= e
	}
	return n, true
}

func validate(extents []int) error {
	for i, e := range extents {
		if e < 0 {
			return fmt.Errorf("axis %d: %d: %w", i, e, ErrNegativeExtent)
		}
	}
	return nil
}

// removeAt returns extents with axis k dropped.
func removeAt(extents []int, k int) []int {
	checkAxis(k, len(extents))
	out := make([]int, 0, len(extents)-1)
	out = append(out, extents[:k]...)
	return append(out, extents[k+1:]...)
}

func checkAxis(k, ndim int) {
	if k < 0 || k >= ndim {
		panic(fmt.Sprintf("remove axis %d out of range for rank %d", k, ndim))
	}
}

// insertAt returns extents with length inserted at k; k past the end appends.
func insertAt(extents []int, k, length int) []int {
	if k < 0 {
		panic(fmt.Sprintf("add axis %d: negative axis", k))
	}
	k = min(k, len(extents))
	out := make([]int, 0, len(extents)+1)
	out = append(out, extents[:k]...)
	out = append(out, length)
	return append(out, extents[k:]...)
}
