package workload

import "github.com/pgvanniekerk/ezfork/pkg/forkjoin"

// Fib computes the nth Fibonacci number by naive recursion, offloading the
// n-2 branch of every call to the pool.
func Fib(p Spawner, n int) int {
	if n < 2 {
		return n
	}

	var b forkjoin.Block
	var x int
	p.Spawn(&b, func() { x = Fib(p, n-2) })
	y := Fib(p, n-1)
	p.Sync(&b)
	return x + y
}

// FibSequential computes the nth Fibonacci number by the same naive recursion
// on the calling goroutine only.
func FibSequential(n int) int {
	if n < 2 {
		return n
	}
	return FibSequential(n-1) + FibSequential(n-2)
}
