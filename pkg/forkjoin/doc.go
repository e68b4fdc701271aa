// Package forkjoin provides a fixed-size worker pool for recursive divide-and-conquer
// computations.
//
// A fork-join computation splits its work into two branches. One branch is handed to
// an idle worker with Spawn, the other is computed on the calling goroutine, and Sync
// waits for the first before both results are combined. When no worker is idle, Spawn
// simply runs the branch inline, so a computation never waits for a free worker and
// produces the same result whatever the pool size.
//
// # Overview
//
// Key features:
//   - Fixed number of worker goroutines, created once by New and joined by Shutdown
//   - Non-blocking dispatch with inline fallback when every worker is busy
//   - Counting join per fork-join region (Block), nestable to any depth
//   - Panics raised by dispatched tasks are surfaced to the caller after the join
//   - Typed results with errors through Fork
//   - Optional zap logging, Prometheus metrics, per-worker init hooks and OS thread pinning
//
// # Usage
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/pgvanniekerk/ezfork/pkg/forkjoin"
//	)
//
//	func main() {
//		pool, err := forkjoin.New()
//		if err != nil {
//			log.Fatalf("failed to start pool: %v", err)
//		}
//		defer pool.Shutdown()
//
//		var fib func(n int) int
//		fib = func(n int) int {
//			if n < 2 {
//				return n
//			}
//			var b forkjoin.Block
//			var x int
//			pool.Spawn(&b, func() { x = fib(n - 2) })
//			y := fib(n - 1)
//			pool.Sync(&b)
//			return x + y
//		}
//
//		fmt.Println(fib(30))
//	}
//
// # Rules
//
// 1. A Block belongs to one fork-join region. Do not share it between goroutines that
// run independent regions, and do not read results written by a spawned task before
// Sync has returned.
//
// 2. Tasks always run to completion. There is no cancellation or timeout.
//
// 3. Shutdown requires every worker to be idle: Sync every Block first.
//
// 4. Misuse of the pool (Spawn before New or after Shutdown, Init on a running pool,
// Shutdown with tasks in flight) is a programming error and panics.
package forkjoin
