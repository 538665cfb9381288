package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/layout"
	"github.com/born-ml/ndarray/internal/storage"
)

// View is a read-only view of an existing array.
type View[T any, L layout.Layout, B storage.Backend[T]] struct {
	ref Ref[T, L, B]
}

// ViewMut is a read-write view of an existing array.
type ViewMut[T any, L layout.Layout, B storage.Backend[T]] struct {
	ref RefMut[T, L, B]
}

// RawView is a read-only view whose elements may not be safe to dereference.
type RawView[T any, L layout.Layout, B storage.Backend[T]] struct {
	ref RawRef[T, L, B]
}

// RawViewMut is a read-write view whose elements may not be safe to dereference.
type RawViewMut[T any, L layout.Layout, B storage.Backend[T]] struct {
	ref RawRefMut[T, L, B]
}

// Ref returns the view as a read-only safe reference.
func (v *View[T, L, B]) Ref() *Ref[T, L, B] { return &v.ref }

// Raw returns the view as a read-only raw reference.
func (v *View[T, L, B]) Raw() *RawRef[T, L, B] { return v.ref.Raw() }

// Layout returns the shape of the view.
func (v *View[T, L, B]) Layout() L { return v.ref.layout }

// Len returns the number of elements in the view.
func (v *View[T, L, B]) Len() int { return v.Raw().Len() }

// IsEmpty reports whether the view has no elements.
func (v *View[T, L, B]) IsEmpty() bool { return v.Raw().IsEmpty() }

// View re-borrows the view.
func (v *View[T, L, B]) View() *View[T, L, B] { return Borrow[T, L, B](v) }

// RawView re-borrows the view without the dereference guarantee.
func (v *View[T, L, B]) RawView() *RawView[T, L, B] { return BorrowRaw[T, L, B](v) }

// RefMut returns the view as a mutable safe reference.
func (v *ViewMut[T, L, B]) RefMut() *RefMut[T, L, B] { return &v.ref }

// Ref returns the view as a read-only safe reference.
func (v *ViewMut[T, L, B]) Ref() *Ref[T, L, B] { return v.ref.Ref() }

// RawMut returns the view as a mutable raw reference.
func (v *ViewMut[T, L, B]) RawMut() *RawRefMut[T, L, B] { return v.ref.RawMut() }

// Raw returns the view as a read-only raw reference.
func (v *ViewMut[T, L, B]) Raw() *RawRef[T, L, B] { return v.ref.Raw() }

// Layout returns the shape of the view.
func (v *ViewMut[T, L, B]) Layout() L { return v.ref.layout }

// Len returns the number of elements in the view.
func (v *ViewMut[T, L, B]) Len() int { return v.Raw().Len() }

// IsEmpty reports whether the view has no elements.
func (v *ViewMut[T, L, B]) IsEmpty() bool { return v.Raw().IsEmpty() }

// View borrows the view read-only.
func (v *ViewMut[T, L, B]) View() *View[T, L, B] { return Borrow[T, L, B](v) }

// ViewMut re-borrows the view.
func (v *ViewMut[T, L, B]) ViewMut() *ViewMut[T, L, B] { return BorrowMut[T, L, B](v) }

// RawView borrows the view as a raw read view.
func (v *ViewMut[T, L, B]) RawView() *RawView[T, L, B] { return BorrowRaw[T, L, B](v) }

// RawViewMut borrows the view as a raw write view.
func (v *ViewMut[T, L, B]) RawViewMut() *RawViewMut[T, L, B] { return BorrowRawMut[T, L, B](v) }

// Raw returns the view as a read-only raw reference.
func (v *RawView[T, L, B]) Raw() *RawRef[T, L, B] { return &v.ref }

// Layout returns the shape of the view.
func (v *RawView[T, L, B]) Layout() L { return v.ref.layout }

// Len returns the number of elements in the view.
func (v *RawView[T, L, B]) Len() int { return v.ref.Len() }

// IsEmpty reports whether the view has no elements.
func (v *RawView[T, L, B]) IsEmpty() bool { return v.ref.IsEmpty() }

// RawView re-borrows the view.
func (v *RawView[T, L, B]) RawView() *RawView[T, L, B] { return BorrowRaw[T, L, B](v) }

// RawMut returns the view as a mutable raw reference.
func (v *RawViewMut[T, L, B]) RawMut() *RawRefMut[T, L, B] { return &v.ref }

// Raw returns the view as a read-only raw reference.
func (v *RawViewMut[T, L, B]) Raw() *RawRef[T, L, B] { return v.ref.Raw() }

// Layout returns the shape of the view.
func (v *RawViewMut[T, L, B]) Layout() L { return v.ref.layout }

// Len returns the number of elements in the view.
func (v *RawViewMut[T, L, B]) Len() int { return v.Raw().Len() }

// IsEmpty reports whether the view has no elements.
func (v *RawViewMut[T, L, B]) IsEmpty() bool { return v.Raw().IsEmpty() }

// RawView borrows the view read-only.
func (v *RawViewMut[T, L, B]) RawView() *RawView[T, L, B] { return BorrowRaw[T, L, B](v) }

// RawViewMut re-borrows the view.
func (v *RawViewMut[T, L, B]) RawViewMut() *RawViewMut[T, L, B] { return BorrowRawMut[T, L, B](v) }

// InsertAxis returns a view of v with an axis of length 1 inserted at axis.
// This is a view operation (no data copy).
func InsertAxis[T any, L layout.AxisAdder[M], M layout.Layout, B storage.Backend[T]](
	v *View[T, L, B], axis int,
) *View[T, M, B] {
	return &View[T, M, B]{ref: Ref[T, M, B]{
		layout: v.ref.layout.AddAxis(axis, 1),
		own:    v.ref.own,
	}}
}

// InsertAxisMut is InsertAxis for write views.
func InsertAxisMut[T any, L layout.AxisAdder[M], M layout.Layout, B storage.Backend[T]](
	v *ViewMut[T, L, B], axis int,
) *ViewMut[T, M, B] {
	return &ViewMut[T, M, B]{ref: RefMut[T, M, B]{
		layout: v.ref.layout.AddAxis(axis, 1),
		own:    v.ref.own,
	}}
}

// RemoveAxis returns a view of v with the length-1 axis removed.
// This is a view operation (no data copy).
func RemoveAxis[T any, L layout.AxisRemover[S], S layout.Layout, B storage.Backend[T]](
	v *View[T, L, B], axis int,
) (*View[T, S, B], error) {
	if err := checkUnitAxis(v.ref.layout, axis); err != nil {
		return nil, err
	}
	return &View[T, S, B]{ref: Ref[T, S, B]{
		layout: v.ref.layout.RemoveAxis(axis),
		own:    v.ref.own,
	}}, nil
}

// RemoveAxisMut is RemoveAxis for write views.
func RemoveAxisMut[T any, L layout.AxisRemover[S], S layout.Layout, B storage.Backend[T]](
	v *ViewMut[T, L, B], axis int,
) (*ViewMut[T, S, B], error) {
	if err := checkUnitAxis(v.ref.layout, axis); err != nil {
		return nil, err
	}
	return &ViewMut[T, S, B]{ref: RefMut[T, S, B]{
		layout: v.ref.layout.RemoveAxis(axis),
		own:    v.ref.own,
	}}, nil
}

func checkUnitAxis(l layout.Layout, axis int) error {
	if axis < 0 || axis >= l.NDim() {
		return fmt.Errorf("axis %d for rank %d: %w", axis, l.NDim(), ErrAxisOutOfRange)
	}
	if n := l.Extents()[axis]; n != 1 {
		return fmt.Errorf("axis %d has length %d: %w", axis, n, ErrAxisNotUnit)
	}
	return nil
}
