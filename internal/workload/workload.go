// Package workload contains fork-join computations run on a worker pool. They
// are interchangeable examples of the pool's intended use.
package workload

import "github.com/pgvanniekerk/ezfork/pkg/forkjoin"

// Spawner is the part of a pool a fork-join workload needs.
type Spawner interface {
	Spawn(b *forkjoin.Block, task forkjoin.Task)
	Sync(b *forkjoin.Block)
}
