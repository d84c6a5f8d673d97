package parallel

import (
	"runtime"
	"sync"
)

// Parallelize divides the specified total number (items) according to the number of CPU cores,
// and executes the specified function (fn) in parallel for each range (start, end).
// fn also receives the index of its chunk; chunks are numbered in range order.
func Parallelize(items int, fn func(chunk, start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}

	// Calculate the number of items each worker handles (ceiling division)
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(c, s, e int) {
			defer wg.Done()
			fn(c, s, e)
		}(i, start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold performs parallelization only when the number of items exceeds the threshold
// If below threshold, normal sequential processing is performed as a single chunk 0.
func ParallelizeWithThreshold(items int, threshold int, fn func(chunk, start, end int)) {
	if items <= threshold {
		fn(0, 0, items)
		return
	}
	Parallelize(items, fn)
}

// ReduceWithThreshold sums width values per item. partial must add the
// contributions of items [start, end) into acc. Chunk results are combined in
// chunk order, so the result does not depend on goroutine scheduling; it can
// differ in the last bits from the sequential path because the summation
// order changes with the chunk size.
func ReduceWithThreshold(items, threshold, width int, partial func(acc []float64, start, end int)) []float64 {
	total := make([]float64, width)
	if items <= threshold {
		partial(total, 0, items)
		return total
	}

	// One slot per possible chunk. Unused slots stay zero.
	slots := make([][]float64, runtime.NumCPU())
	Parallelize(items, func(chunk, start, end int) {
		acc := make([]float64, width)
		partial(acc, start, end)
		slots[chunk] = acc
	})
	for _, acc := range slots {
		for j, v := range acc {
			total[j] += v
		}
	}
	return total
}
