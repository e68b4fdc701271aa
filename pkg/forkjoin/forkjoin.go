package forkjoin

import (
	"github.com/pgvanniekerk/ezfork/internal/metrics"
	"github.com/pgvanniekerk/ezfork/internal/workerpool"
)

// Block scopes one fork-join region. Declare one per region, pass it to every
// Spawn of that region and to the Sync that closes it. The zero value is ready
// to use; Start resets a Block for a new region.
type Block = workerpool.Block

// Task is a closure dispatched by Spawn. It communicates its result by writing
// into storage owned by the caller, which may be read once Sync has returned.
type Task = workerpool.Task

// Pool is a fixed-size fork-join worker pool. The goroutine calling Spawn is
// the final, implicit worker: a Pool of n workers runs n-1 worker goroutines.
//
// Usage:
//  1. Declare a Block for the fork-join region.
//  2. Spawn the asynchronous branch. If no worker is idle it runs inline
//     before Spawn returns.
//  3. Compute the synchronous branch on the calling goroutine.
//  4. Sync the Block, then combine both results.
type Pool interface {

	// Init starts the worker goroutines of a pool that is not initialized,
	// typically after Shutdown. A worker count of 0 sizes the pool from the
	// CPU count. Calling Init on an initialized pool panics.
	Init(workers int) error

	// Spawn hands task to the first idle worker and records it on b, or runs
	// it on the calling goroutine when every worker is busy. Spawn never
	// blocks on another task. It panics if the pool is not initialized.
	Spawn(b *Block, task Task)

	// Sync blocks until every task dispatched through b has completed. If one
	// of them panicked, Sync re-panics on the calling goroutine.
	Sync(b *Block)

	// SyncErr is Sync, returning a task panic as an error instead.
	SyncErr(b *Block) error

	// Workers returns the configured worker count, the calling goroutine
	// included, or 0 if the pool is not initialized.
	Workers() int

	// Shutdown terminates and joins every worker goroutine and returns the
	// worker count the pool had. Every worker must be idle.
	Shutdown() int
}

var _ Pool = (*workerpool.WorkerPool)(nil)

// New creates and initializes a Pool. Without options the pool is sized to the
// number of logical CPUs.
//
// Usage Example:
//
//	pool, err := forkjoin.New(forkjoin.WithWorkers(4))
//	if err != nil {
//	    log.Fatalf("failed to start pool: %v", err)
//	}
//	defer pool.Shutdown()
//
//	var fib func(n int) int
//	fib = func(n int) int {
//	    if n < 2 {
//	        return n
//	    }
//	    var b forkjoin.Block
//	    var x int
//	    pool.Spawn(&b, func() { x = fib(n - 2) })
//	    y := fib(n - 1)
//	    pool.Sync(&b)
//	    return x + y
//	}
func New(opts ...Option) (Pool, error) {

	o := &options{}
	for idx := range opts {
		opts[idx](o)
	}

	if o.registerer != nil {
		m, err := metrics.New(o.registerer, o.namespace)
		if err != nil {
			return nil, err
		}
		o.cfg.Metrics = m
	}

	wp := workerpool.New(o.cfg)
	if err := wp.Init(o.workers); err != nil {
		return nil, err
	}
	return wp, nil
}

// Do runs async on a worker, or inline if none is idle, runs sync on the
// calling goroutine, and returns once both have completed.
func Do(p Pool, async, sync Task) {
	var b Block
	p.Spawn(&b, async)
	sync()
	p.Sync(&b)
}
