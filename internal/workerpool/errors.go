package workerpool

import "errors"

// MaxWorkers is the largest worker count a WorkerPool can be initialized with,
// the calling goroutine included.
const MaxWorkers = 1024

var ErrInvalidWorkerCount = errors.New("invalid worker count")
var ErrInitFailed = errors.New("worker pool initialization failed")

// Precondition violations. These are programming errors and are raised as panics.
var (
	errAlreadyInitialized = errors.New("cannot call Init on an initialized WorkerPool")
	errNotInitialized     = errors.New("cannot call Spawn on an uninitialized WorkerPool")
	errShutdownWhileBusy  = errors.New("cannot call Shutdown while a worker is running a task")
)
