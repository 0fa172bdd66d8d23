package transport

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rdkcentral/rpc-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var getPowerState = servicedef.Request{
	Operation: "getPowerState",
	ID:        ldvalue.Int(42),
	Method:    "org.rdk.PowerManager.getPowerState",
}

// fakeCurl writes an executable shell script that stands in for curl.
func fakeCurl(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skip on windows: fake curl is a shell script")
	}
	path := filepath.Join(t.TempDir(), "curl")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestCurlArgs(t *testing.T) {
	c := NewCurlInvoker("", 0, nil)
	assert.Equal(t, []string{
		"--silent",
		"--header", "Content-Type: application/json",
		"--request", "POST",
		"-d", `{"jsonrpc":"2.0","id":42,"method":"org.rdk.PowerManager.getPowerState"}`,
		"http://127.0.0.1:55555/jsonrpc",
	}, c.Args(getPowerState))
	assert.Equal(t, DefaultTimeout, c.timeout)
}

func TestCurlCommandLineIsShellQuoted(t *testing.T) {
	c := NewCurlInvoker("", 0, nil)
	line := c.CommandLine(getPowerState)
	assert.True(t, strings.HasPrefix(line, `curl --silent --header 'Content-Type: application/json' --request POST -d '{`), line)
	assert.True(t, strings.HasSuffix(line, " http://127.0.0.1:55555/jsonrpc"), line)
}

func TestCurlReturnsStdoutVerbatim(t *testing.T) {
	response := `{"jsonrpc": "2.0","id": 42,"result": {"currentState": "STANDBY","newState": "ON"}}`
	c := NewCurlInvoker(fakeCurl(t, "printf '%s' '"+response+"'"), time.Second*5, nil)
	out, err := c.SendRequest(context.Background(), getPowerState)
	require.NoError(t, err)
	assert.Equal(t, response, out)
}

func TestCurlPassesArgumentsWithoutShell(t *testing.T) {
	c := NewCurlInvoker(fakeCurl(t, `printf '%s\n' "$@"`), time.Second*5, nil)
	out, err := c.SendRequest(context.Background(), getPowerState)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(c.Args(getPowerState), "\n")+"\n", out)
}

func TestCurlNonZeroExitIsFailure(t *testing.T) {
	c := NewCurlInvoker(fakeCurl(t, "echo 'connection refused' >&2; exit 7"), time.Second*5, nil)
	out, err := c.SendRequest(context.Background(), getPowerState)
	require.Error(t, err)
	assert.Equal(t, "", out)
	assert.Contains(t, err.Error(), "exited with status 7")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCurlEmptyOutputIsFailure(t *testing.T) {
	c := NewCurlInvoker(fakeCurl(t, "exit 0"), time.Second*5, nil)
	_, err := c.SendRequest(context.Background(), getPowerState)
	assert.Equal(t, ErrNoResponse, err)
}

func TestCurlLaunchFailure(t *testing.T) {
	c := NewCurlInvoker(filepath.Join(t.TempDir(), "no-such-curl"), time.Second, nil)
	_, err := c.SendRequest(context.Background(), getPowerState)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not run")
}

func TestCurlTimeout(t *testing.T) {
	c := NewCurlInvoker(fakeCurl(t, "exec sleep 10"), time.Millisecond*200, nil)
	start := time.Now()
	_, err := c.SendRequest(context.Background(), getPowerState)
	require.Error(t, err)
	var terr *TimeoutError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "command timeout after 200ms", err.Error())
	assert.Less(t, int64(time.Since(start)), int64(time.Second*5))
}

func TestCurlCancelledByCaller(t *testing.T) {
	c := NewCurlInvoker(fakeCurl(t, "exec sleep 10"), time.Second*30, nil)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(time.Millisecond*100, cancel)

	_, err := c.SendRequest(ctx, getPowerState)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "command cancelled: context canceled", err.Error())
	assert.NotContains(t, err.Error(), "exited with status")
}

func TestDiagnosticLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := NewCurlInvoker("", 0, zap.New(core))
	c.InfoLog("curl command to getPowerState is sent from the test runner")
	c.ErrorLog("curl command invoke failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "curl command invoke failed", entries[1].Message)
}
