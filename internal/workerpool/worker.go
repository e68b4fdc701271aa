package workerpool

import (
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// work is the body of a worker goroutine. It reports on ready once the init
// hook has run, then alternates between waiting for a task and running it
// until the slot is marked terminating.
func (w *WorkerPool) work(s *slot, ready chan<- error) {
	defer close(s.exited)

	if w.lockOSThread {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	if w.workerInit != nil {
		if err := w.workerInit(s.id); err != nil {
			ready <- errors.Wrapf(err, "worker %d", s.id)
			return
		}
	}
	ready <- nil

	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		switch s.load() {
		case stateTerminating:
			w.logger.Debug("worker exiting", zap.Int("worker", s.id))
			return
		case stateIdle:
			s.cond.Wait()
			continue
		}

		task, b := s.task, s.block
		s.mu.Unlock()

		panicked := b.run(task)

		s.mu.Lock()
		s.task, s.block = nil, nil
		s.store(stateIdle)
		w.complete(b, panicked)
	}
}
