package workerpool

import (
	"testing"

	"github.com/pgvanniekerk/ezfork/internal/sysinfo"
	"github.com/stretchr/testify/suite"
)

// Test_New_TestSuite executes the test suite for the New function
// of this package
func Test_New_TestSuite(t *testing.T) {
	suite.Run(t, new(New_TestSuite))
}

// New_TestSuite tests the New function of this package.
type New_TestSuite struct {
	suite.Suite
}

// Test_New_DefaultsCollaborators ensures that an empty Config yields a usable,
// uninitialized WorkerPool.
func (suite *New_TestSuite) Test_New_DefaultsCollaborators() {
	wp := New(Config{})
	suite.Require().NotNil(wp.logger)
	suite.Require().Equal(sysinfo.HostCPUs{}, wp.cpus)
	suite.Require().False(wp.initialized.Load())
	suite.Require().Nil(wp.slots)
	suite.Require().Equal(0, wp.Workers())
}

// Test_New_ShutdownOfUninitializedPool ensures that shutting down a pool that
// was never initialized is a no-op reporting only the calling goroutine.
func (suite *New_TestSuite) Test_New_ShutdownOfUninitializedPool() {
	wp := New(Config{})
	suite.Require().Equal(1, wp.Shutdown())
}
