package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rdkcentral/rpc-contract-tests/servicedef"

	"go.uber.org/zap"
)

// HTTPInvoker posts requests with net/http instead of spawning curl. Like curl without --fail,
// it returns whatever body the service sent regardless of the HTTP status.
type HTTPInvoker struct {
	diagnostics
	client  *http.Client
	timeout time.Duration
}

// NewHTTPInvoker creates an HTTPInvoker. A nil client means http.DefaultClient.
func NewHTTPInvoker(client *http.Client, timeout time.Duration, logger *zap.Logger) *HTTPInvoker {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPInvoker{
		diagnostics: newDiagnostics(logger),
		client:      client,
		timeout:     effectiveTimeout(timeout),
	}
}

func (h *HTTPInvoker) SendRequest(ctx context.Context, req servicedef.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	body := req.Body()
	h.logger.Debug("Sending request", zap.String("operation", req.Operation),
		zap.String("url", req.TargetURL()), zap.String("body", body))

	httpReq, err := http.NewRequestWithContext(ctx, req.HTTPMethod(), req.TargetURL(), strings.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", servicedef.ContentTypeJSON)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		if cerr := contextError(ctx, "request", h.timeout); cerr != nil {
			return "", cerr
		}
		return "", fmt.Errorf("request to %s failed: %w", req.TargetURL(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if cerr := contextError(ctx, "request", h.timeout); cerr != nil {
			return "", cerr
		}
		return "", fmt.Errorf("error reading response body: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNoResponse
	}
	return string(data), nil
}
