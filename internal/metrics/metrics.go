// Package metrics exposes Prometheus collectors describing fork-join pool activity.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "forkjoin"

// Metrics holds the collectors updated by a worker pool. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	SpawnsDispatched prometheus.Counter
	SpawnsInline     prometheus.Counter
	TasksCompleted   prometheus.Counter
	TaskPanics       prometheus.Counter
	SyncWaits        prometheus.Counter
	Workers          prometheus.Gauge
}

// New creates the collectors under namespace and registers them with reg.
func New(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		SpawnsDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "spawns_dispatched_total",
			Help:      "Number of tasks handed to an idle worker.",
		}),
		SpawnsInline: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "spawns_inline_total",
			Help:      "Number of tasks run on the calling goroutine because no worker was idle.",
		}),
		TasksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tasks_completed_total",
			Help:      "Number of dispatched tasks completed by workers.",
		}),
		TaskPanics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "task_panics_total",
			Help:      "Number of dispatched tasks that panicked.",
		}),
		SyncWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sync_waits_total",
			Help:      "Number of joins that had to wait for outstanding tasks.",
		}),
		Workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "workers",
			Help:      "Configured worker count, the calling goroutine included.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.SpawnsDispatched,
		m.SpawnsInline,
		m.TasksCompleted,
		m.TaskPanics,
		m.SyncWaits,
		m.Workers,
	} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering forkjoin metrics")
		}
	}
	return m, nil
}

func (m *Metrics) Dispatched() {
	if m != nil {
		m.SpawnsDispatched.Inc()
	}
}

func (m *Metrics) Inline() {
	if m != nil {
		m.SpawnsInline.Inc()
	}
}

// Completed records a finished task and whether it panicked.
func (m *Metrics) Completed(panicked bool) {
	if m == nil {
		return
	}
	m.TasksCompleted.Inc()
	if panicked {
		m.TaskPanics.Inc()
	}
}

func (m *Metrics) Waited() {
	if m != nil {
		m.SyncWaits.Inc()
	}
}

func (m *Metrics) SetWorkers(n int) {
	if m != nil {
		m.Workers.Set(float64(n))
	}
}
