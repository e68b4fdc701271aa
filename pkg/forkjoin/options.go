package forkjoin

import (
	"github.com/pgvanniekerk/ezfork/internal/sysinfo"
	"github.com/pgvanniekerk/ezfork/internal/workerpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// options holds the configuration New builds a Pool from.
type options struct {
	workers    int
	registerer prometheus.Registerer
	namespace  string
	cfg        workerpool.Config
}

// Option customizes a Pool created by New.
type Option func(*options)

// WithWorkers sets the worker count, the calling goroutine included. 0, the
// default, uses the number of logical CPUs.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithLogger sets the logger receiving pool lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.cfg.Logger = logger
	}
}

// WithMetrics registers the pool's Prometheus collectors with reg under namespace.
func WithMetrics(reg prometheus.Registerer, namespace string) Option {
	return func(o *options) {
		o.registerer = reg
		o.namespace = namespace
	}
}

// WithWorkerInit sets a hook run on every worker goroutine before it accepts
// tasks. If any hook fails, New returns an error matching ErrInitFailed.
func WithWorkerInit(hook func(id int) error) Option {
	return func(o *options) {
		o.cfg.WorkerInit = hook
	}
}

// WithLockOSThread pins every worker goroutine to its own OS thread.
func WithLockOSThread() Option {
	return func(o *options) {
		o.cfg.LockOSThread = true
	}
}

// WithCPUCounter replaces CPU discovery used when the worker count is 0.
func WithCPUCounter(count func() int) Option {
	return func(o *options) {
		o.cfg.CPUs = sysinfo.CPUCounterFunc(count)
	}
}
