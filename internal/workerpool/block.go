package workerpool

import (
	"sync/atomic"

	"github.com/sourcegraph/conc/panics"
)

// Task is a unit of work handed to Spawn. Results are communicated by the
// closure writing into storage owned by the caller, which is safe to read once
// Sync has returned.
type Task func()

// Block scopes one fork-join region. It counts the tasks dispatched to workers
// and the tasks those workers have completed. The zero value is ready to use.
//
// A Block belongs to exactly one fork-join frame. It must not be shared between
// concurrent regions or reused once Sync has returned without calling Start.
type Block struct {

	// dispatched is only incremented by Spawn, on the goroutine owning the block.
	dispatched atomic.Int64

	// completed is only incremented by workers, while the pool-wide lock is held.
	completed atomic.Int64

	// recoveredPanic holds the first panic raised by an asynchronously
	// dispatched task.
	recoveredPanic atomic.Pointer[panics.Recovered]
}

// Start resets the counters of b so it can scope a new fork-join region.
func (b *Block) Start() {
	*b = Block{}
}

// Dispatched returns the number of tasks handed to workers through b.
func (b *Block) Dispatched() int64 {
	return b.dispatched.Load()
}

// Completed returns the number of dispatched tasks that have finished.
func (b *Block) Completed() int64 {
	return b.completed.Load()
}

func (b *Block) pending() bool {
	return b.dispatched.Load() != b.completed.Load()
}

// run executes task on a worker, capturing a panic instead of letting it take
// down the worker goroutine. It reports whether the task panicked.
func (b *Block) run(task Task) (panicked bool) {
	r := panics.Try(task)
	if r == nil {
		return false
	}
	b.recoveredPanic.CompareAndSwap(nil, r)
	return true
}

// recovered returns the first captured task panic, or nil.
func (b *Block) recovered() *panics.Recovered {
	return b.recoveredPanic.Load()
}
