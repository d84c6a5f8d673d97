package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelizeCoversEveryItemOnce(t *testing.T) {
	const items = 10007
	seen := make([]int32, items)

	Parallelize(items, func(_, start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, n := range seen {
		if n != 1 {
			t.Fatalf("item %d visited %d times", i, n)
		}
	}
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	var calls int
	ParallelizeWithThreshold(10, 100, func(chunk, start, end int) {
		calls++
		assert.Equal(t, 0, chunk)
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.Equal(t, 1, calls)
}

func TestParallelizeZeroItems(t *testing.T) {
	Parallelize(0, func(_, _, _ int) {
		t.Fatal("fn must not be called")
	})
}

func TestReduceWithThreshold(t *testing.T) {
	sumAndSquares := func(values []float64) func(acc []float64, start, end int) {
		return func(acc []float64, start, end int) {
			for _, v := range values[start:end] {
				acc[0] += v
				acc[1] += v * v
			}
		}
	}

	values := make([]float64, 5000)
	for i := range values {
		values[i] = float64(i % 7)
	}

	sequential := ReduceWithThreshold(len(values), len(values), 2, sumAndSquares(values))
	parallel := ReduceWithThreshold(len(values), 10, 2, sumAndSquares(values))

	// integers are summed exactly in either order
	assert.Equal(t, sequential, parallel)

	again := ReduceWithThreshold(len(values), 10, 2, sumAndSquares(values))
	assert.Equal(t, parallel, again, "chunked reduction must be repeatable")
}

func TestReduceWithThresholdEmpty(t *testing.T) {
	got := ReduceWithThreshold(0, 10, 3, func(acc []float64, start, end int) {
		assert.Equal(t, start, end)
	})
	assert.Equal(t, []float64{0, 0, 0}, got)
}
