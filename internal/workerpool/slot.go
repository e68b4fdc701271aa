package workerpool

import (
	"sync"
	"sync/atomic"
)

// slotState is the state of a single worker slot.
type slotState int32

const (
	stateIdle slotState = iota
	stateRunning
	stateTerminating
)

func (s slotState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// slot holds the control state of one worker goroutine. It persists across
// many Blocks for the whole lifetime of an initialized pool.
type slot struct {

	// id is the position of the slot in the pool's fixed scan order.
	id int

	// mu guards task, block and every write to state.
	mu *sync.Mutex

	// cond wakes the worker when a task is assigned or termination is requested.
	cond *sync.Cond

	// state is only written while mu is held. It is stored atomically so the
	// dispatcher can pre-check it without taking the lock.
	state atomic.Int32

	// task is the closure assigned by the dispatcher, nil while idle.
	task Task

	// block receives the completion of task, nil while idle.
	block *Block

	// exited is closed when the worker goroutine returns.
	exited chan struct{}
}

func newSlot(id int) *slot {
	mu := &sync.Mutex{}
	return &slot{
		id:     id,
		mu:     mu,
		cond:   sync.NewCond(mu),
		exited: make(chan struct{}),
	}
}

func (s *slot) load() slotState {
	return slotState(s.state.Load())
}

// store must be called with s.mu held.
func (s *slot) store(state slotState) {
	s.state.Store(int32(state))
}

// assign hands task to the slot if it is still idle once locked. It reports
// whether the slot accepted the task.
func (s *slot) assign(b *Block, task Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another dispatcher may have claimed the slot between the unlocked
	// pre-check and the lock.
	if s.load() != stateIdle {
		return false
	}

	s.task = task
	s.block = b
	b.dispatched.Add(1)
	s.store(stateRunning)
	s.cond.Signal()
	return true
}

// terminate requests the worker to exit and waits until it has. The slot must
// be idle.
func (s *slot) terminate() {
	s.mu.Lock()
	if s.load() != stateIdle {
		s.mu.Unlock()
		panic(errShutdownWhileBusy)
	}
	s.store(stateTerminating)
	s.cond.Signal()
	s.mu.Unlock()

	<-s.exited
}
