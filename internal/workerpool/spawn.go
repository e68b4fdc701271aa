package workerpool

// Spawn hands task to the first idle worker and records it on b. When every
// worker is busy the task runs on the calling goroutine before Spawn returns,
// and b is left untouched. Spawn never blocks on another task.
//
// Spawn panics if the pool is not initialized.
func (w *WorkerPool) Spawn(b *Block, task Task) {
	if !w.initialized.Load() {
		panic(errNotInitialized)
	}

	for _, s := range w.slots {
		if s.load() != stateIdle {
			continue
		}
		if s.assign(b, task) {
			w.metrics.Dispatched()
			return
		}
	}

	w.metrics.Inline()
	task()
}

// Sync blocks until every task dispatched through b has completed. Writes made
// by those tasks are visible to the caller once Sync returns.
//
// If a dispatched task panicked, Sync panics on the calling goroutine with the
// recovered value (a *panics.Recovered) after the join.
func (w *WorkerPool) Sync(b *Block) {
	w.wait(b)
	if r := b.recovered(); r != nil {
		panic(r)
	}
}

// SyncErr is Sync, except that a panic raised by a dispatched task is returned
// as an error instead of being re-raised.
func (w *WorkerPool) SyncErr(b *Block) error {
	w.wait(b)
	if r := b.recovered(); r != nil {
		return r.AsError()
	}
	return nil
}

func (w *WorkerPool) wait(b *Block) {
	if !b.pending() {
		return
	}

	w.metrics.Waited()
	w.mu.Lock()
	for b.pending() {
		w.cond.Wait()
	}
	w.mu.Unlock()
}

// complete records the completion of a task dispatched through b and wakes
// every joiner. It is called with the worker's slot lock held.
func (w *WorkerPool) complete(b *Block, panicked bool) {
	w.mu.Lock()
	b.completed.Add(1)
	w.cond.Broadcast()
	w.mu.Unlock()

	w.metrics.Completed(panicked)
}
