package rpctests

import (
	"context"
	"io"

	"github.com/rdkcentral/rpc-contract-tests/framework"
	"github.com/rdkcentral/rpc-contract-tests/report"
	"github.com/rdkcentral/rpc-contract-tests/transport"
)

// SuiteParams holds what the suite needs to reach the service and record results.
type SuiteParams struct {
	Invoker transport.Invoker
	Report  *report.Report

	// Compare defaults to ExactComparison.
	Compare Comparison

	// URL overrides the catalog's default endpoint when set.
	URL string

	// Output receives the per-case console summary.
	Output io.Writer

	// Cases are extra cases declared in configuration.
	Cases []Case
}

func RunTestSuite(
	ctx context.Context,
	params SuiteParams,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{
		ctx:     ctx,
		invoker: params.Invoker,
		report:  params.Report,
		compare: params.Compare,
		url:     params.URL,
		output:  params.Output,
	}
	if env.compare == nil {
		env.compare = ExactComparison
	}
	if env.output == nil {
		env.output = io.Discard
	}

	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c, env: env}

		t.RunGroup("PowerManager", DoPowerManagerTests)
		t.RunGroup("DeviceDiagnostics", DoDeviceDiagnosticsTests)
		if len(params.Cases) > 0 {
			t.RunGroup("configured", func(t *T) { t.RunCases(params.Cases...) })
		}
	})
}
