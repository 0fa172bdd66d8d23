package rpctests

import (
	"fmt"
	"strings"

	"github.com/rdkcentral/rpc-contract-tests/report"
	"github.com/rdkcentral/rpc-contract-tests/servicedef"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const (
	MessageMatched          = "Output response is matching with expected one"
	MessageMismatched       = "Output response is different from expected one"
	MessageInvocationFailed = "invocation failed"
	invocationFailedLog     = "curl command invoke failed"
)

var separator = strings.Repeat("-", 123)

// Case is one check of a single remote operation against a literal expected response.
type Case struct {
	// ID is the test case identifier, e.g. "TCID_002_PowerManager_getPowerState".
	ID          string
	Description string
	Request     servicedef.Request
	Expected    string

	// PassMessage is reported when the response matches; MessageMatched if empty.
	PassMessage string
}

// RunCases runs each case as a subtest named after its ID.
func (t *T) RunCases(cases ...Case) {
	for _, c := range cases {
		c := c
		t.Run(c.ID, func(t *T) { t.RunCase(c) })
	}
}

// RunCase sends the case's request, compares the response, prints the outcome and submits it
// to the report.
//
// A failed invocation or a mismatch fails the test but does not stop it. Failing to record
// the result does stop it, since the evidence would otherwise be lost.
func (t *T) RunCase(c Case) {
	env := t.env
	out := env.output

	fmt.Fprintln(out, "TC Description -  "+c.Description)
	fmt.Fprintln(out, separator)

	req := c.Request
	if env.url != "" {
		req = req.WithURL(env.url)
	}
	t.Debug("Request: %s", req.Body())

	response, err := env.invoker.SendRequest(env.ctx, req)
	if err == nil {
		env.invoker.InfoLog(fmt.Sprintf("curl command to %s is sent from the test runner", req.Operation))
	} else {
		env.invoker.ErrorLog(invocationFailedLog)
		t.Debug("Invocation error: %s", err)
		response = ""
	}
	fmt.Fprintln(out, separator)

	result := report.TestResult{ID: c.ID, Response: response}
	switch {
	case err != nil:
		result.Status, result.Message = report.StatusFail, MessageInvocationFailed
	case env.compare(c.Expected, response):
		result.Status, result.Message = report.StatusPass, c.passMessage()
	default:
		result.Status, result.Message = report.StatusFail, MessageMismatched
		t.Debug("Response mismatch (-expected +actual):\n%s", cmp.Diff(c.Expected, response))
	}

	fmt.Fprintln(out, "Testcase ID : "+result.ID)
	fmt.Fprintln(out, "Testcase Output Response : "+result.Response)
	fmt.Fprintln(out, "Testcase Status : "+string(result.Status))
	fmt.Fprintln(out, "Testcase Message : "+result.Message)
	fmt.Fprintln(out)

	require.NoError(t, env.report.Submit(result), "test result for %s could not be recorded", c.ID)

	if result.Status != report.StatusPass {
		if err != nil {
			t.Errorf("%s: %s", result.Message, err)
		} else {
			t.Errorf("%s", result.Message)
		}
	}
}

func (c Case) passMessage() string {
	if c.PassMessage == "" {
		return MessageMatched
	}
	return c.PassMessage
}
