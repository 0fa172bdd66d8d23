package framework

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const pollInterval = time.Millisecond * 100

// AwaitService polls url until the service answers any HTTP request, or until timeout expires.
// The HTTP status doesn't matter; we only need to know that something is listening. Failed
// attempts are reported to debugLogger, which may be nil.
func AwaitService(url string, timeout time.Duration, output io.Writer, debugLogger Logger) error {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	fmt.Fprintf(output, "Connecting to service at %s", url)

	client := &http.Client{Timeout: pollInterval * 10}
	defer client.CloseIdleConnections()
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			fmt.Fprintln(output)
			fmt.Fprintf(output, "Service responded with status %d\n", resp.StatusCode)
			return nil
		}
		debugLogger.Printf("Service query failed: %s", err)
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(pollInterval)
	}
}
