package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polymesh/qem/internal/parallel"
)

func TestForSequentialBelowCutover(t *testing.T) {
	out := make([]int, 10)
	parallel.For(10, 100, func(i int) { out[i] = i * i })
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestForConcurrentAboveCutover(t *testing.T) {
	const n = 50000
	out := make([]int32, n)
	parallel.For(n, 1000, func(i int) { out[i] = int32(i) })
	for i, v := range out {
		assert.Equal(t, int32(i), v)
	}
}

func TestForVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 100000
	visits := make([]int64, n)
	parallel.For(n, 10, func(i int) { atomic.AddInt64(&visits[i], 1) })
	for i, c := range visits {
		assert.Equal(t, int64(1), c, "index %d", i)
	}
}
