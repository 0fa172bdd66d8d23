// Package transport sends catalog requests to the service under test and returns the raw
// response text.
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rdkcentral/rpc-contract-tests/servicedef"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single invocation when no other timeout is configured.
const DefaultTimeout = time.Second * 30

// ErrNoResponse means the invocation completed but the service sent back nothing.
var ErrNoResponse = errors.New("no response from service")

// Invoker is the abstraction the test cases use to reach the service.
//
// SendRequest blocks until the response is available, the timeout expires, or ctx is done. Any
// error means the invocation failed and the returned text must be ignored.
type Invoker interface {
	SendRequest(ctx context.Context, req servicedef.Request) (string, error)
	InfoLog(message string)
	ErrorLog(message string)
}

type diagnostics struct {
	logger *zap.Logger
}

func newDiagnostics(logger *zap.Logger) diagnostics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return diagnostics{logger: logger}
}

// InfoLog writes an informational diagnostic line.
func (d diagnostics) InfoLog(message string) {
	d.logger.Info(message)
}

// ErrorLog writes an error diagnostic line.
func (d diagnostics) ErrorLog(message string) {
	d.logger.Error(message)
}

func effectiveTimeout(t time.Duration) time.Duration {
	if t <= 0 {
		return DefaultTimeout
	}
	return t
}

// contextError reports why ctx ended, or nil if it has not. An expired timeout becomes a
// TimeoutError; cancellation of the caller's context wraps context.Canceled.
func contextError(ctx context.Context, what string, timeout time.Duration) error {
	switch err := ctx.Err(); {
	case errors.Is(err, context.DeadlineExceeded):
		return &TimeoutError{What: what, Timeout: timeout}
	case err != nil:
		return fmt.Errorf("%s cancelled: %w", what, err)
	}
	return nil
}

// TimeoutError is returned when an invocation did not finish within its timeout.
type TimeoutError struct {
	What    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return e.What + " timeout after " + e.Timeout.String()
}
