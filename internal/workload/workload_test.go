package workload

import (
	"testing"

	"github.com/pgvanniekerk/ezfork/pkg/forkjoin"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newPool(t *testing.T, workers int) forkjoin.Pool {
	t.Helper()
	pool, err := forkjoin.New(forkjoin.WithWorkers(workers))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Shutdown() })
	return pool
}

func TestFib(t *testing.T) {
	for _, workers := range []int{1, 2, 4} {
		pool := newPool(t, workers)
		require.Equal(t, 0, Fib(pool, 0))
		require.Equal(t, 1, Fib(pool, 1))
		require.Equal(t, 55, Fib(pool, 10))
		require.Equal(t, FibSequential(22), Fib(pool, 22), "workers=%d", workers)
	}
}

func TestSum(t *testing.T) {
	xs := make([]int64, 100_000)
	var want int64
	for i := range xs {
		xs[i] = int64(i)
		want += int64(i)
	}

	for _, workers := range []int{1, 3, 8} {
		pool := newPool(t, workers)
		require.Equal(t, want, Sum(pool, xs), "workers=%d", workers)
	}
	require.Equal(t, int64(0), Sum(newPool(t, 2), nil))
}

func TestCounter_ConcurrentIncrements(t *testing.T) {
	pool := newPool(t, 4)

	var c Counter
	var g errgroup.Group
	for i := 0; i < 100; i++ {
		g.Go(func() error {
			c.Increment(pool)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, 100, c.Value())
}
