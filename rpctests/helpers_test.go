package rpctests

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rdkcentral/rpc-contract-tests/framework"
	"github.com/rdkcentral/rpc-contract-tests/report"
	"github.com/rdkcentral/rpc-contract-tests/servicedef"

	"github.com/stretchr/testify/require"
)

type cannedResponse struct {
	text string
	err  error
}

// fakeInvoker returns canned responses keyed by JSON-RPC method and records what it was asked.
type fakeInvoker struct {
	responses map[string]cannedResponse
	requests  []servicedef.Request
	infoLogs  []string
	errorLogs []string
}

func (f *fakeInvoker) SendRequest(ctx context.Context, req servicedef.Request) (string, error) {
	f.requests = append(f.requests, req)
	r, ok := f.responses[req.Method]
	if !ok {
		return `{"jsonrpc":"2.0","id":42,"error":{"code":-32601,"message":"Unknown method."}}`, nil
	}
	return r.text, r.err
}

func (f *fakeInvoker) InfoLog(message string)  { f.infoLogs = append(f.infoLogs, message) }
func (f *fakeInvoker) ErrorLog(message string) { f.errorLogs = append(f.errorLogs, message) }

type suiteFixture struct {
	invoker *fakeInvoker
	report  *report.Report
	output  bytes.Buffer
	csvPath string
}

func newSuiteFixture(t *testing.T, responses map[string]cannedResponse) *suiteFixture {
	csvPath := filepath.Join(t.TempDir(), "results.csv")
	return &suiteFixture{
		invoker: &fakeInvoker{responses: responses},
		report:  report.New(csvPath),
		csvPath: csvPath,
	}
}

func (f *suiteFixture) params() SuiteParams {
	return SuiteParams{Invoker: f.invoker, Report: f.report, Output: &f.output}
}

// runCases runs the cases inside a throwaway framework run.
func (f *suiteFixture) runCases(compare Comparison, cases ...Case) framework.Results {
	env := &environment{
		ctx:     context.Background(),
		invoker: f.invoker,
		report:  f.report,
		compare: compare,
		output:  &f.output,
	}
	return framework.Run(nil, nil, func(c *framework.Context) {
		(&T{context: c, env: env}).RunCases(cases...)
	})
}

func (f *suiteFixture) csvRows(t *testing.T) [][]string {
	t.Helper()
	file, err := os.Open(f.csvPath)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows[1:] // header
}
