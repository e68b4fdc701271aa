package workload

import (
	"sync"

	"github.com/pgvanniekerk/ezfork/pkg/forkjoin"
)

// Counter is a mutex guarded count shared by concurrent fork-join regions.
type Counter struct {
	mu sync.Mutex
	n  int
}

// Increment adds one to the count inside its own fork-join region, from the
// asynchronous branch.
func (c *Counter) Increment(p Spawner) {
	var b forkjoin.Block
	p.Spawn(&b, func() {
		c.mu.Lock()
		c.n++
		c.mu.Unlock()
	})
	p.Sync(&b)
}

// Value returns the current count.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
