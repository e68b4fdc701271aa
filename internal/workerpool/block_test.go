package workerpool

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// TestBlock_TestSuite executes the test suite for the Block type.
func TestBlock_TestSuite(t *testing.T) {
	suite.Run(t, new(Block_TestSuite))
}

// Block_TestSuite tests the counters and panic capture of the Block type.
type Block_TestSuite struct {
	suite.Suite
}

// TestBlock_ZeroValueIsSynced tests that a zero Block has nothing outstanding.
func (s *Block_TestSuite) TestBlock_ZeroValueIsSynced() {
	var b Block
	s.Require().False(b.pending())
	s.Require().Equal(int64(0), b.Dispatched())
	s.Require().Equal(int64(0), b.Completed())
}

// TestBlock_StartResetsCountersAndPanic tests that Start clears a used block.
func (s *Block_TestSuite) TestBlock_StartResetsCountersAndPanic() {
	var b Block
	b.dispatched.Add(3)
	b.completed.Add(1)
	b.run(func() { panic("boom") })

	b.Start()

	s.Require().False(b.pending())
	s.Require().Nil(b.recovered())
}

// TestBlock_RunKeepsFirstPanic tests that only the first task panic is kept.
func (s *Block_TestSuite) TestBlock_RunKeepsFirstPanic() {
	var b Block

	s.Require().False(b.run(func() {}))
	s.Require().True(b.run(func() { panic("first") }))
	s.Require().True(b.run(func() { panic("second") }))

	r := b.recovered()
	s.Require().NotNil(r)
	s.Require().Equal("first", r.Value)
}
