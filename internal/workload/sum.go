package workload

import "github.com/pgvanniekerk/ezfork/pkg/forkjoin"

// SumCutoff is the slice length below which Sum stops forking.
const SumCutoff = 1024

// Sum adds xs by halving the slice, summing the left half on the pool and
// the right half on the calling goroutine.
func Sum(p Spawner, xs []int64) int64 {
	if len(xs) <= SumCutoff {
		var total int64
		for _, x := range xs {
			total += x
		}
		return total
	}

	mid := len(xs) / 2
	var b forkjoin.Block
	var left int64
	p.Spawn(&b, func() { left = Sum(p, xs[:mid]) })
	right := Sum(p, xs[mid:])
	p.Sync(&b)
	return left + right
}
