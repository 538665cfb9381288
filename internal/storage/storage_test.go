package storage

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/born-ml/ndarray/internal/layout"
	"github.com/born-ml/ndarray/internal/parallel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// view reads the n elements a backend exposes.
func view[T any](b Backend[T], n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(b.Base()), n)
}

func filled(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i + 1)
	}
	return data
}

func TestElements(t *testing.T) {
	n, err := Elements(layout.Dim2(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = Elements(layout.Dim2(math.MaxInt, 3))
	assert.ErrorIs(t, err, ErrSizeOverflow)

	_, err = Elements(layout.Dim1(-1))
	assert.ErrorIs(t, err, layout.ErrNegativeExtent)
}

func TestExclusive(t *testing.T) {
	e := ExclusiveFrom(filled(4))

	assert.True(t, e.IsUnique())
	assert.Equal(t, 0, e.Offset())
	assert.Equal(t, 4, e.AllocLen())
	assert.Equal(t, []int32{1, 2, 3, 4}, view[int32](e, 4))

	e.Release()
	e.Release()
	assert.Equal(t, 0, e.AllocLen())
	assert.True(t, e.Base() == nil)
}

func TestExclusiveEnsureUniqueNeverAllocates(t *testing.T) {
	e := NewExclusive[float64](1024)
	before := e.Base()

	allocs := testing.AllocsPerRun(100, func() {
		e.EnsureUnique(1024)
		if !e.IsUnique() {
			t.Fatal("exclusive backend must always be unique")
		}
	})

	assert.Zero(t, allocs)
	assert.Equal(t, before, e.Base())
}

func TestSharedUniqueEnsureUniqueIsNoop(t *testing.T) {
	s := SharedFrom(filled(8))
	before := s.Base()

	allocs := testing.AllocsPerRun(100, func() {
		s.EnsureUnique(8)
	})

	assert.Zero(t, allocs)
	assert.Equal(t, before, s.Base())
	assert.Equal(t, 1, s.Refs())
}

func TestSharedClone(t *testing.T) {
	a := SharedFrom(filled(4))
	b := a.Clone()

	assert.True(t, a.SameAllocation(b))
	assert.Equal(t, 2, a.Refs())
	assert.False(t, a.IsUnique())
	assert.False(t, b.IsUnique())
	assert.Equal(t, a.Base(), b.Base())

	b.Release()
	assert.True(t, a.IsUnique())
	assert.Equal(t, 1, a.Refs())
}

func TestCopyOnWriteScenario(t *testing.T) {
	first := ShareExclusive(ExclusiveFrom([]int32{10, 20, 30, 40}))
	second := first.Clone()
	require.Equal(t, 2, first.Refs())

	first.EnsureUnique(4)
	*(*int32)(first.Base()) = 99

	assert.False(t, first.SameAllocation(second))
	assert.Equal(t, 1, first.Refs())
	assert.Equal(t, 1, second.Refs())
	assert.Equal(t, 4, first.AllocLen())
	assert.Equal(t, 0, first.Offset())
	assert.Equal(t, []int32{99, 20, 30, 40}, view[int32](first, 4))
	assert.Equal(t, []int32{10, 20, 30, 40}, view[int32](second, 4))
}

func TestCopyOnWriteIdempotent(t *testing.T) {
	a := SharedFrom(filled(16))
	b := a.Clone()
	defer b.Release()

	a.EnsureUnique(16)
	addr := a.Base()
	allocLen := a.AllocLen()

	allocs := testing.AllocsPerRun(10, func() {
		a.EnsureUnique(16)
	})

	assert.Zero(t, allocs)
	assert.Equal(t, addr, a.Base())
	assert.Equal(t, allocLen, a.AllocLen())
}

func TestCopyOnWriteIsolation(t *testing.T) {
	tests := []struct {
		name         string
		aOff, aLen   int
		bOff, bLen   int
		wantAllocLen int
	}{
		{"same range", 0, 10, 0, 10, 10},
		{"disjoint", 0, 4, 6, 4, 4},
		{"overlapping", 2, 6, 4, 6, 6},
		{"a inside b", 3, 2, 0, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := SharedFrom(filled(10))
			a := root.Clone()
			a.Slide(tt.aOff)
			b := root.Clone()
			b.Slide(tt.bOff)
			root.Release()

			seen := append([]int32(nil), view[int32](b, tt.bLen)...)

			a.EnsureUnique(tt.aLen)
			for i, v := range view[int32](a, tt.aLen) {
				view[int32](a, tt.aLen)[i] = -v
			}

			assert.Equal(t, tt.wantAllocLen, a.AllocLen())
			assert.Equal(t, 0, a.Offset())
			assert.Equal(t, seen, view[int32](b, tt.bLen))
			assert.Equal(t, tt.bOff, b.Offset())
			assert.Equal(t, 10, b.AllocLen())
			assert.True(t, b.IsUnique())

			want := make([]int32, tt.aLen)
			for i := range want {
				want[i] = -int32(tt.aOff + i + 1)
			}
			assert.Equal(t, want, view[int32](a, tt.aLen))
		})
	}
}

func TestCopyTailPolicy(t *testing.T) {
	t.Run("large view copies the tail", func(t *testing.T) {
		root := SharedFrom(filled(10), WithPolicy(CopyTail))
		a := root.Clone()
		a.Slide(2)
		defer root.Release()

		a.EnsureUnique(5)

		assert.Equal(t, 8, a.AllocLen())
		assert.Equal(t, []int32{3, 4, 5, 6, 7, 8, 9, 10}, view[int32](a, 8))
	})

	t.Run("small view copies only the view", func(t *testing.T) {
		root := SharedFrom(filled(10), WithPolicy(CopyTail))
		a := root.Clone()
		a.Slide(6)
		defer root.Release()

		a.EnsureUnique(2)

		assert.Equal(t, 2, a.AllocLen())
		assert.Equal(t, []int32{7, 8}, view[int32](a, 2))
	})
}

func TestCopyOnWriteParallelCopy(t *testing.T) {
	n := 10_000
	root := SharedFrom(filled(n), WithParallel(parallel.Config{
		Enabled:      true,
		NumWorkers:   4,
		MinChunkSize: 256,
	}))
	a := root.Clone()
	defer root.Release()

	a.EnsureUnique(n)

	assert.False(t, a.SameAllocation(root))
	assert.Equal(t, view[int32](root, n), view[int32](a, n))
}

func TestCopyOnWriteZeroSizedElements(t *testing.T) {
	root := SharedFrom(make([]struct{}, 5))
	a := root.Clone()
	a.Slide(3)
	defer root.Release()

	a.EnsureUnique(2)

	assert.Equal(t, 2, a.AllocLen())
	assert.Equal(t, 0, a.Offset())
	assert.True(t, a.IsUnique())
}

func TestCopyOnWriteLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	root := SharedFrom(filled(4), WithLogger(zap.New(core)))
	a := root.Clone()

	a.EnsureUnique(4)
	a.EnsureUnique(4)
	root.Release()
	a.Release()

	cow := logs.FilterMessage("storage.cow").All()
	require.Len(t, cow, 1)
	fields := cow[0].ContextMap()
	assert.EqualValues(t, 4, fields["elems"])
	assert.EqualValues(t, 2, fields["refs"])
	assert.Equal(t, "view", fields["policy"])

	assert.Equal(t, 2, logs.FilterMessage("storage.free").Len())
}

func TestSharedRelease(t *testing.T) {
	a := NewShared[int](3)
	b := a.Clone()

	a.Release()
	a.Release()
	assert.Equal(t, 0, a.Refs())
	assert.True(t, a.Base() == nil)
	assert.Equal(t, 1, b.Refs())

	b.Release()
	assert.Equal(t, 0, b.AllocLen())
}

func TestOverReleasePanics(t *testing.T) {
	a := newAllocation([]int{1})
	a.release()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrOverRelease))
	}()
	a.release()
}

func TestSlideOutOfRangePanics(t *testing.T) {
	s := NewShared[byte](4)
	defer s.Release()

	assert.Panics(t, func() { s.Slide(5) })
	assert.Panics(t, func() { s.Slide(-1) })
	assert.NotPanics(t, func() { s.Slide(4) })
}

func TestBaseAtAllocationEnd(t *testing.T) {
	s := SharedFrom([]int64{1, 2, 3})
	defer s.Release()
	start := s.Base()

	s.Slide(2)
	assert.Equal(t, unsafe.Add(start, 2*unsafe.Sizeof(int64(0))), s.Base())

	s.Slide(1)
	assert.Equal(t, 3, s.Offset())
	assert.Equal(t, start, s.Base())
}

func TestShareExclusiveMovesWithoutCopy(t *testing.T) {
	e := ExclusiveFrom(filled(4))
	base := e.Base()

	s := ShareExclusive(e)
	defer s.Release()

	assert.Equal(t, base, s.Base())
	assert.Equal(t, 0, e.AllocLen())
	assert.True(t, s.IsUnique())
}

func TestIntoExclusive(t *testing.T) {
	t.Run("unique moves", func(t *testing.T) {
		s := SharedFrom(filled(6))
		s.Slide(2)
		base := s.Base()

		e := s.IntoExclusive(3)

		assert.Equal(t, base, e.Base())
		assert.Equal(t, []int32{3, 4, 5}, view[int32](e, 3))
		assert.Equal(t, 0, s.Refs())
	})

	t.Run("shared copies", func(t *testing.T) {
		s := SharedFrom(filled(6))
		other := s.Clone()
		defer other.Release()

		e := s.IntoExclusive(6)
		view[int32](e, 6)[0] = 100

		assert.NotEqual(t, other.Base(), e.Base())
		assert.Equal(t, int32(1), view[int32](other, 6)[0])
		assert.True(t, other.IsUnique())
	})
}

func TestCopyPolicyString(t *testing.T) {
	assert.Equal(t, "view", CopyView.String())
	assert.Equal(t, "tail", CopyTail.String())
	assert.Equal(t, "unknown", CopyPolicy(7).String())
}

func BenchmarkEnsureUniqueShared(b *testing.B) {
	root := NewShared[float32](1 << 20)
	defer root.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := root.Clone()
		h.EnsureUnique(1 << 20)
		h.Release()
	}
}
