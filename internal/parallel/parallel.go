// Package parallel provides chunked parallel loops for bulk element work.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
// Chunks are sized for bulk memory copies, where a goroutine only pays off
// past a few pages of data.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1 << 16,
	}
}

// ForChunks calls f(start, end) over disjoint ranges covering [0, n).
// Falls back to a single call if parallelism is disabled or n is too small.
func ForChunks(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*cfg.MinChunkSize {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Copy copies min(len(dst), len(src)) elements, splitting large copies
// across workers. Returns the number of elements copied.
func Copy[T any](dst, src []T, cfg Config) int {
	n := min(len(dst), len(src))
	ForChunks(n, func(s, e int) {
		copy(dst[s:e], src[s:e])
	}, cfg)
	return n
}
