package forkjoin

import "github.com/pgvanniekerk/ezfork/internal/workerpool"

// MaxWorkers is the largest worker count a Pool accepts, the calling goroutine included.
const MaxWorkers = workerpool.MaxWorkers

// ErrInvalidWorkerCount is returned when a Pool is initialized with a negative
// worker count or one above MaxWorkers.
var ErrInvalidWorkerCount = workerpool.ErrInvalidWorkerCount

// ErrInitFailed is matched by the error returned when a worker init hook
// fails. The pool is left uninitialized, with no worker goroutines running.
//
// Example handling:
//
//	pool, err := forkjoin.New(forkjoin.WithWorkerInit(initGPU))
//	if errors.Is(err, forkjoin.ErrInitFailed) {
//	    // Degrade to sequential execution.
//	    pool, err = forkjoin.New(forkjoin.WithWorkers(1))
//	}
var ErrInitFailed = workerpool.ErrInitFailed

// InitError carries the individual worker init hook errors.
type InitError = workerpool.InitError
