package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rdkcentral/rpc-contract-tests/servicedef"

	"go.uber.org/zap"
)

const defaultCurlPath = "curl"

// After the timeout kills curl, this is how long we wait for its output pipes to close.
const curlWaitDelay = time.Second

// CurlInvoker runs one curl process per request, with a fixed set of flags:
//
//	curl --silent --header "Content-Type: application/json" --request POST -d <body> <url>
//
// The process is started directly, not through a shell.
type CurlInvoker struct {
	diagnostics
	curlPath string
	timeout  time.Duration
}

// NewCurlInvoker creates a CurlInvoker. An empty curlPath means "curl" from PATH, and a
// non-positive timeout means DefaultTimeout.
func NewCurlInvoker(curlPath string, timeout time.Duration, logger *zap.Logger) *CurlInvoker {
	if curlPath == "" {
		curlPath = defaultCurlPath
	}
	return &CurlInvoker{
		diagnostics: newDiagnostics(logger),
		curlPath:    curlPath,
		timeout:     effectiveTimeout(timeout),
	}
}

// Args returns the curl arguments for a request.
func (c *CurlInvoker) Args(req servicedef.Request) []string {
	return []string{
		"--silent",
		"--header", "Content-Type: " + servicedef.ContentTypeJSON,
		"--request", req.HTTPMethod(),
		"-d", req.Body(),
		req.TargetURL(),
	}
}

// CommandLine renders the invocation as a shell-quoted command line, for diagnostics.
func (c *CurlInvoker) CommandLine(req servicedef.Request) string {
	var b commandBuilder
	b.add(c.curlPath)
	b.add(c.Args(req)...)
	return b.String()
}

func (c *CurlInvoker) SendRequest(ctx context.Context, req servicedef.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug("Sending request", zap.String("operation", req.Operation),
		zap.String("command", c.CommandLine(req)))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.curlPath, c.Args(req)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = curlWaitDelay

	err := cmd.Run()
	if cerr := contextError(ctx, "command", c.timeout); cerr != nil {
		return "", cerr
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			message := strings.TrimSpace(stderr.String())
			if message != "" {
				return "", fmt.Errorf("%s exited with status %d: %s", c.curlPath, exitErr.ExitCode(), message)
			}
			return "", fmt.Errorf("%s exited with status %d", c.curlPath, exitErr.ExitCode())
		}
		return "", fmt.Errorf("could not run %s: %w", c.curlPath, err)
	}
	if stdout.Len() == 0 {
		return "", ErrNoResponse
	}
	return stdout.String(), nil
}
