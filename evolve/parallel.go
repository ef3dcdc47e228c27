package evolve

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum batch size to fan out to goroutines.
// Below this, single-threaded is faster due to spawn overhead.
const parallelThreshold = 256

// forChunks applies fn to contiguous index ranges covering [0, n). Chunks are
// disjoint, so fn may write to per-index output slots without synchronization.
// With parallel false, or for small batches, everything runs on the caller's
// goroutine in order.
func forChunks(n int, parallel bool, fn func(start, end int)) {
	if !parallel || n < parallelThreshold {
		fn(0, n)
		return
	}

	workers := runtime.GOMAXPROCS(0)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
