package servicedef

import (
	"encoding/json"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	ProtocolVersion = "2.0"
	MethodPOST      = "POST"
	DefaultURL      = "http://127.0.0.1:55555/jsonrpc"
	ContentTypeJSON = "application/json"
)

// Request describes one call to a JSON-RPC method exposed by the service under test.
//
// Requests are declared once in the catalog and never modified; use WithURL to derive a copy
// that targets a different endpoint.
type Request struct {
	// Operation is the short name used in log messages and test IDs, e.g. "getPowerState".
	Operation string

	// URL is the JSON-RPC endpoint. An empty URL means DefaultURL.
	URL string

	// ID is the JSON-RPC request id. It may be a number or a string.
	ID ldvalue.Value

	// Method is the fully qualified JSON-RPC method, e.g. "org.rdk.PowerManager.getPowerState".
	Method string

	// Params is the params object, or a null value if the method takes none.
	Params ldvalue.Value

	// RawBody, if set, is sent verbatim instead of the encoded envelope. It exists for
	// negative tests that deliberately send malformed JSON.
	RawBody string
}

type envelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      ldvalue.Value   `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// HTTPMethod is always POST for JSON-RPC.
func (r Request) HTTPMethod() string { return MethodPOST }

// TargetURL returns the endpoint the request should be sent to.
func (r Request) TargetURL() string {
	if r.URL == "" {
		return DefaultURL
	}
	return r.URL
}

// WithURL returns a copy of the request bound to a different endpoint.
func (r Request) WithURL(url string) Request {
	r.URL = url
	return r
}

// Body returns the HTTP request body.
func (r Request) Body() string {
	if r.RawBody != "" {
		return r.RawBody
	}
	e := envelope{
		JSONRPC: ProtocolVersion,
		ID:      r.ID,
		Method:  r.Method,
	}
	if !r.Params.IsNull() {
		e.Params = json.RawMessage(r.Params.JSONString())
	}
	data, _ := json.Marshal(e) // can't fail, all fields are already valid JSON
	return string(data)
}

func (r Request) String() string {
	return r.Operation + " " + r.Body()
}
