package diffusion

import (
	"runtime"
	"sync"
)

// parallelFor executes fn over contiguous chunks of [lo, hi). Chunk bounds
// depend only on the range and worker count, so a given index is always
// computed by exactly one goroutine and results are deterministic.
func parallelFor(lo, hi, minChunk int, fn func(lo, hi int)) {
	n := hi - lo
	workers := runtime.NumCPU()
	if n <= minChunk || workers <= 1 {
		fn(lo, hi)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := lo + w*chunk
		end := start + chunk
		if end > hi {
			end = hi
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
