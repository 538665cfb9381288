package storage

import (
	"go.uber.org/zap"

	"github.com/born-ml/ndarray/internal/parallel"
)

// EnsureUnique runs copy-on-write for the n elements visible at Offset().
//
// If the allocation is referenced only by this handle nothing happens.
// Otherwise the view is copied into a fresh allocation, the handle is
// repointed at it with offset 0, and the reference on the old allocation is
// dropped. Other handles keep observing the old allocation unchanged.
//
// The handle switches allocations only after the copy has completed, so a
// failed allocation leaves it on the old one.
func (s *Shared[T]) EnsureUnique(n int) {
	if s.alloc == nil || s.alloc.isUnique() {
		return
	}

	old := s.alloc
	keep := s.copyLen(n)
	data := make([]T, keep)
	parallel.Copy(data, old.data[s.off:s.off+keep], s.cfg.Parallel)

	if ce := s.cfg.Logger.Check(zap.DebugLevel, "storage.cow"); ce != nil {
		ce.Write(
			zap.Int("elems", keep),
			zap.Int("view", n),
			zap.Int("offset", s.off),
			zap.Int32("refs", old.refCount.Load()),
			zap.Stringer("policy", s.cfg.Policy),
		)
	}

	s.alloc = newAllocation(data)
	s.off = 0
	old.release()
}

// copyLen returns how many elements copy-on-write duplicates for a view of n.
func (s *Shared[T]) copyLen(n int) int {
	total := len(s.alloc.data)
	if s.cfg.Policy == CopyTail && 2*n >= total {
		return total - s.off
	}
	return n
}
