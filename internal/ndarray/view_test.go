package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/layout"
	"github.com/born-ml/ndarray/internal/storage"
)

type (
	sharedIx2 = *storage.Shared[int]

	rawAccess   = RawAccess[int, layout.Ix2, sharedIx2]
	safeAccess  = SafeAccess[int, layout.Ix2, sharedIx2]
	rawWrite    = RawWriteAccess[int, layout.Ix2, sharedIx2]
	writeAccess = WriteAccess[int, layout.Ix2, sharedIx2]
)

func TestCapabilityRows(t *testing.T) {
	arr := mustShared(t, []int{1, 2, 3, 4, 5, 6}, layout.Dim2(2, 3))
	defer arr.Release()

	tests := []struct {
		name                       string
		handle                     any
		raw, safe, rawWrite, write bool
	}{
		{"owned", arr, true, true, true, true},
		{"view", arr.View(), true, true, false, false},
		{"view mut", arr.ViewMut(), true, true, true, true},
		{"raw view", arr.RawView(), true, false, false, false},
		{"raw view mut", arr.RawViewMut(), true, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, raw := tt.handle.(rawAccess)
			_, safe := tt.handle.(safeAccess)
			_, rw := tt.handle.(rawWrite)
			_, write := tt.handle.(writeAccess)

			assert.Equal(t, tt.raw, raw, "RawAccess")
			assert.Equal(t, tt.safe, safe, "SafeAccess")
			assert.Equal(t, tt.rawWrite, rw, "RawWriteAccess")
			assert.Equal(t, tt.write, write, "WriteAccess")
		})
	}
}

func TestViewsSeeOwnerData(t *testing.T) {
	arr := mustFromSlice(t, []int{1, 2, 3, 4, 5, 6}, layout.Dim2(2, 3))

	assert.Equal(t, arr.Ref().Slice(), arr.View().Ref().Slice())
	assert.Equal(t, arr.Raw().Ptr(), arr.RawView().Raw().Ptr())
	assert.Equal(t, arr.Raw().Ptr(), arr.ViewMut().RawView().Raw().Ptr())
	assert.Equal(t, 6, arr.View().View().Len())
	assert.Equal(t, layout.Dim2(2, 3), arr.RawViewMut().RawView().Layout())

	vm := arr.ViewMut()
	vm.RefMut().SliceMut()[5] = 60
	assert.Equal(t, 60, arr.Ref().Slice()[5])
}

func TestBorrowFromView(t *testing.T) {
	arr := mustFromSlice(t, []float64{1, 2}, layout.Dim1(2))

	vm := BorrowMut[float64, layout.Ix1, *storage.Exclusive[float64]](arr)
	inner := vm.ViewMut()
	p, ok := inner.RefMut().FirstMut()
	require.True(t, ok)
	*p = 10

	read := Borrow[float64, layout.Ix1, *storage.Exclusive[float64]](vm)
	v, ok := read.Ref().First()
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	raw := BorrowRaw[float64, layout.Ix1, *storage.Exclusive[float64]](read)
	assert.Equal(t, 2, raw.Len())
	assert.False(t, raw.IsEmpty())

	rawMut := BorrowRawMut[float64, layout.Ix1, *storage.Exclusive[float64]](vm.RawViewMut())
	*rawMut.RawMut().AsMutPtr() = 20
	assert.Equal(t, []float64{20, 2}, arr.Ref().Slice())
}

func TestWriteViewCopiesOnWriteForOwner(t *testing.T) {
	a := mustShared(t, []int{1, 2, 3, 4}, layout.Dim2(2, 2))
	b := Clone(a)

	view := a.ViewMut()
	p, ok := view.RefMut().FirstMut()
	require.True(t, ok)
	*p = 100

	// The view shares a's handle: a was repointed to the private copy.
	assert.Equal(t, []int{100, 2, 3, 4}, a.Ref().Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, b.Ref().Slice())
	assert.True(t, a.Storage().IsUnique())
	assert.True(t, b.Storage().IsUnique())
}

func TestRawWriteViewCopiesOnWrite(t *testing.T) {
	a := mustShared(t, []int{5, 6}, layout.Dim1(2))
	b := Clone(a)

	rv := a.RawViewMut()
	assert.False(t, rv.RawMut().IsUnique())

	ptr := rv.RawMut().AsMutPtr()
	*ptr = 50

	assert.True(t, rv.RawMut().IsUnique())
	assert.Equal(t, []int{50, 6}, a.Ref().Slice())
	assert.Equal(t, []int{5, 6}, b.Ref().Slice())
}

func TestRawViewReadDoesNotCopy(t *testing.T) {
	a := mustShared(t, []int{5, 6}, layout.Dim1(2))
	b := Clone(a)

	rv := a.RawView()
	assert.Equal(t, 5, *rv.Raw().AsPtr())
	assert.Equal(t, rv.Raw().Ptr(), b.Raw().Ptr())
	assert.Equal(t, rv.RawView().Raw().Ptr(), b.Raw().Ptr())
}

func TestInsertAxis(t *testing.T) {
	arr := mustFromSlice(t, []int{1, 2, 3}, layout.Dim1(3))

	v := InsertAxis[int, layout.Ix1, layout.Ix2](arr.View(), 0)
	assert.Equal(t, layout.Dim2(1, 3), v.Layout())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, v.Ref().Slice())

	back, err := RemoveAxis[int, layout.Ix2, layout.Ix1](v, 0)
	require.NoError(t, err)
	assert.Equal(t, layout.Dim1(3), back.Layout())

	vm := InsertAxisMut[int, layout.Ix1, layout.Ix2](arr.ViewMut(), 5)
	assert.Equal(t, layout.Dim2(3, 1), vm.Layout())
	vm.RefMut().SliceMut()[1] = 20
	assert.Equal(t, []int{1, 20, 3}, arr.Ref().Slice())

	vm1, err := RemoveAxisMut[int, layout.Ix2, layout.Ix1](vm, 1)
	require.NoError(t, err)
	assert.Equal(t, layout.Dim1(3), vm1.Layout())
}

func TestRemoveAxisErrors(t *testing.T) {
	arr := mustFromSlice(t, []int{1, 2, 3, 4, 5, 6}, layout.Dim2(2, 3))

	_, err := RemoveAxis[int, layout.Ix2, layout.Ix1](arr.View(), 0)
	assert.ErrorIs(t, err, ErrAxisNotUnit)

	_, err = RemoveAxis[int, layout.Ix2, layout.Ix1](arr.View(), 2)
	assert.ErrorIs(t, err, ErrAxisOutOfRange)

	_, err = RemoveAxisMut[int, layout.Ix2, layout.Ix1](arr.ViewMut(), -1)
	assert.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestDynAxisViews(t *testing.T) {
	arr, err := Zeros[int8](layout.Dyn(2, 1, 2))
	require.NoError(t, err)

	v, err := RemoveAxis[int8, layout.IxDyn, layout.IxDyn](arr.View(), 1)
	require.NoError(t, err)
	assert.Equal(t, layout.Dyn(2, 2), v.Layout())
	assert.Equal(t, 4, v.Len())

	w := InsertAxis[int8, layout.IxDyn, layout.IxDyn](v, 2)
	assert.Equal(t, layout.Dyn(2, 2, 1), w.Layout())
}
