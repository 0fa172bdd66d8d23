package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPInvokerPostsEnvelope(t *testing.T) {
	response := `{"jsonrpc": "2.0","id": 42,"result": {"wakeupReason": 7}}`
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, nil, []byte(response)))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h := NewHTTPInvoker(nil, time.Second*5, nil)
		out, err := h.SendRequest(context.Background(), getPowerState.WithURL(server.URL+"/jsonrpc"))
		require.NoError(t, err)
		assert.Equal(t, response, out)

		r := <-requestsCh
		assert.Equal(t, "POST", r.Request.Method)
		assert.Equal(t, "/jsonrpc", r.Request.URL.Path)
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
		assert.Equal(t, getPowerState.Body(), string(r.Body))
	})
}

func TestHTTPInvokerReturnsBodyForErrorStatus(t *testing.T) {
	body := `{"jsonrpc":"2.0","id":42,"error":{"code":-32601,"message":"Unknown method."}}`
	handler := httphelpers.HandlerWithResponse(404, nil, []byte(body))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		out, err := NewHTTPInvoker(nil, time.Second*5, nil).SendRequest(context.Background(), getPowerState.WithURL(server.URL))
		require.NoError(t, err)
		assert.Equal(t, body, out)
	})
}

func TestHTTPInvokerEmptyBodyIsFailure(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		_, err := NewHTTPInvoker(nil, time.Second*5, nil).SendRequest(context.Background(), getPowerState.WithURL(server.URL))
		assert.Equal(t, ErrNoResponse, err)
	})
}

func TestHTTPInvokerConnectionFailure(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	_, err := NewHTTPInvoker(nil, time.Second*5, nil).SendRequest(context.Background(), getPowerState.WithURL(url))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request to "+url+" failed")
}

func TestHTTPInvokerTimeout(t *testing.T) {
	release := make(chan struct{})
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	httphelpers.WithServer(slow, func(server *httptest.Server) {
		defer close(release)
		_, err := NewHTTPInvoker(nil, time.Millisecond*100, nil).SendRequest(context.Background(), getPowerState.WithURL(server.URL))
		var terr *TimeoutError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "request timeout after 100ms", err.Error())
	})
}

func TestHTTPInvokerCancelledByCaller(t *testing.T) {
	release := make(chan struct{})
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	httphelpers.WithServer(slow, func(server *httptest.Server) {
		defer close(release)
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(time.Millisecond*100, cancel)

		_, err := NewHTTPInvoker(nil, time.Second*30, nil).SendRequest(ctx, getPowerState.WithURL(server.URL))
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, "request cancelled: context canceled", err.Error())
	})
}
