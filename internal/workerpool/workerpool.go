package workerpool

import (
	"sync"
	"sync/atomic"

	"github.com/pgvanniekerk/ezfork/internal/metrics"
	"github.com/pgvanniekerk/ezfork/internal/sysinfo"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// WorkerPool is a fixed set of worker goroutines that fork-join computations
// can offload one branch to. The goroutine calling Spawn acts as the final,
// implicit worker: a pool initialized with n workers runs n-1 goroutines.
//
// Synchronization is two-tiered. Every slot has its own mutex and condition
// variable guarding its state and held task. A single pool-wide mutex and
// condition variable guard only Block completion counts and their wake-up.
// No lock is held while a task runs.
type WorkerPool struct {

	// slots is fixed for the lifetime of an initialization and scanned in order by Spawn.
	slots []*slot

	// mu guards Block.completed increments and is the locker of cond.
	mu *sync.Mutex

	// cond is broadcast every time a worker completes a task.
	cond *sync.Cond

	// initialized is set once Init succeeds and cleared by Shutdown.
	initialized atomic.Bool

	// workers is the configured worker count, the calling goroutine included.
	workers int

	logger  *zap.Logger
	metrics *metrics.Metrics
	cpus    sysinfo.CPUCounter

	// workerInit runs on each worker goroutine before it accepts tasks.
	workerInit func(id int) error

	// lockOSThread pins every worker goroutine to its own OS thread.
	lockOSThread bool
}

// InitError reports the worker init hooks that failed during Init. It matches
// ErrInitFailed with errors.Is and unwraps to the individual hook errors.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return ErrInitFailed.Error() + ": " + e.Err.Error()
}

func (e *InitError) Is(target error) bool {
	return target == ErrInitFailed
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Init starts workers-1 worker goroutines. A worker count of 0 sizes the pool
// from the CPU count. Init returns ErrInvalidWorkerCount for a negative count or
// one above MaxWorkers.
//
// If a worker init hook fails, every worker already started is terminated and
// joined before Init returns an *InitError, leaving the pool uninitialized.
//
// Calling Init on an initialized pool panics.
func (w *WorkerPool) Init(workers int) error {
	if w.initialized.Load() {
		panic(errAlreadyInitialized)
	}

	if workers == 0 {
		workers = w.cpus.CPUCount()
		w.logger.Debug("sized worker pool from cpu count", zap.Int("workers", workers))
	}
	if workers < 1 || workers > MaxWorkers {
		return errors.Wrapf(ErrInvalidWorkerCount, "got %d, want 1 to %d", workers, MaxWorkers)
	}

	slots := make([]*slot, workers-1)
	ready := make(chan error, len(slots))
	for i := range slots {
		slots[i] = newSlot(i)
		go w.work(slots[i], ready)
	}

	var errs error
	for range slots {
		errs = multierr.Append(errs, <-ready)
	}
	if errs != nil {
		for _, s := range slots {
			s.terminate()
		}
		w.logger.Error("worker pool initialization rolled back",
			zap.Int("workers", workers),
			zap.Error(errs),
		)
		return errors.WithStack(&InitError{Err: errs})
	}

	w.slots = slots
	w.workers = workers
	w.initialized.Store(true)
	w.metrics.SetWorkers(workers)
	w.logger.Info("worker pool initialized", zap.Int("workers", workers))
	return nil
}

// Shutdown terminates and joins every worker goroutine and returns the worker
// count the pool had, the calling goroutine included. Shutting down a pool
// that was never initialized does nothing and returns 1.
//
// Every worker must be idle: calling Shutdown while a dispatched task is still
// running panics.
func (w *WorkerPool) Shutdown() int {
	if !w.initialized.Load() {
		return 1
	}

	previous := len(w.slots) + 1
	for _, s := range w.slots {
		s.terminate()
	}

	w.slots = nil
	w.workers = 0
	w.initialized.Store(false)
	w.metrics.SetWorkers(0)
	w.logger.Info("worker pool shut down", zap.Int("workers", previous))
	return previous
}

// Workers returns the configured worker count, the calling goroutine
// included, or 0 if the pool is not initialized.
func (w *WorkerPool) Workers() int {
	if !w.initialized.Load() {
		return 0
	}
	return w.workers
}
