package workerpool

import (
	"sync"

	"github.com/pgvanniekerk/ezfork/internal/metrics"
	"github.com/pgvanniekerk/ezfork/internal/sysinfo"
	"go.uber.org/zap"
)

// Config carries the collaborators of a WorkerPool. Every field is optional.
type Config struct {

	// Logger receives lifecycle events. Defaults to a no-op logger.
	Logger *zap.Logger

	// Metrics is updated on every spawn, completion and waiting join.
	Metrics *metrics.Metrics

	// CPUs sizes the pool when Init is called with 0 workers. Defaults to
	// sysinfo.HostCPUs.
	CPUs sysinfo.CPUCounter

	// WorkerInit runs on each worker goroutine before it accepts tasks. A
	// non-nil error aborts Init.
	WorkerInit func(id int) error

	// LockOSThread pins every worker goroutine to its own OS thread.
	LockOSThread bool
}

// New creates an uninitialized WorkerPool. Call Init to start its workers.
func New(cfg Config) *WorkerPool {

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cpus := cfg.CPUs
	if cpus == nil {
		cpus = sysinfo.HostCPUs{}
	}

	mu := &sync.Mutex{}

	return &WorkerPool{
		mu:           mu,
		cond:         sync.NewCond(mu),
		logger:       logger.Named("workerpool"),
		metrics:      cfg.Metrics,
		cpus:         cpus,
		workerInit:   cfg.WorkerInit,
		lockOSThread: cfg.LockOSThread,
	}
}
