package rpctests

import (
	"context"
	"io"

	"github.com/rdkcentral/rpc-contract-tests/framework"
	"github.com/rdkcentral/rpc-contract-tests/report"
	"github.com/rdkcentral/rpc-contract-tests/transport"
)

type environment struct {
	ctx     context.Context
	invoker transport.Invoker
	report  *report.Report
	compare Comparison
	url     string
	output  io.Writer
}

// T represents a test or subtest in our JSON-RPC test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with some extra features such as debug logging that are convenient for
// our use case. Those features are provided by our lower-level framework package.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it were
// a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// RunGroup runs a group of subtests. Filters apply to the subtests, not to the group.
func (t *T) RunGroup(name string, action func(*T)) {
	t.context.RunGroup(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

func (t *T) ID() framework.TestID {
	return t.context.ID()
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}
