package workerpool

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// TestSlot_TestSuite executes the test suite for the slot type.
func TestSlot_TestSuite(t *testing.T) {
	suite.Run(t, new(Slot_TestSuite))
}

// Slot_TestSuite tests task assignment and termination of a slot without a
// worker goroutine attached.
type Slot_TestSuite struct {
	suite.Suite

	s *slot
}

func (s *Slot_TestSuite) SetupTest() {
	s.s = newSlot(0)
}

// TestSlot_AssignIdleSlot tests that an idle slot accepts a task and records it
// on the block.
func (s *Slot_TestSuite) TestSlot_AssignIdleSlot() {
	var b Block

	s.Require().True(s.s.assign(&b, func() {}))
	s.Require().Equal(stateRunning, s.s.load())
	s.Require().Same(&b, s.s.block)
	s.Require().NotNil(s.s.task)
	s.Require().Equal(int64(1), b.Dispatched())
}

// TestSlot_AssignRunningSlot tests that a slot never holds two tasks at once.
func (s *Slot_TestSuite) TestSlot_AssignRunningSlot() {
	var first, second Block

	s.Require().True(s.s.assign(&first, func() {}))
	s.Require().False(s.s.assign(&second, func() {}))
	s.Require().Same(&first, s.s.block)
	s.Require().Equal(int64(0), second.Dispatched())
}

// TestSlot_TerminateBusySlotPanics tests that a running slot cannot be
// terminated, and that the slot lock is released when it panics.
func (s *Slot_TestSuite) TestSlot_TerminateBusySlotPanics() {
	var b Block
	s.Require().True(s.s.assign(&b, func() {}))

	s.Require().PanicsWithError(errShutdownWhileBusy.Error(), func() {
		s.s.terminate()
	})
	s.Require().True(s.s.mu.TryLock())
	s.s.mu.Unlock()
}

// TestSlot_TerminateIdleSlot tests that terminate marks the slot and waits for
// the worker to exit.
func (s *Slot_TestSuite) TestSlot_TerminateIdleSlot() {
	close(s.s.exited)
	s.s.terminate()
	s.Require().Equal(stateTerminating, s.s.load())
}

func (s *Slot_TestSuite) TestSlot_StateString() {
	s.Require().Equal("idle", stateIdle.String())
	s.Require().Equal("running", stateRunning.String())
	s.Require().Equal("terminating", stateTerminating.String())
	s.Require().Equal("unknown", slotState(42).String())
}
