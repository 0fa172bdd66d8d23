// Package catalog declares the JSON-RPC requests the test suites send to each service.
//
// Every supported remote operation has one package-level servicedef.Request value. Callers
// never modify these; Lookup gives by-name access for suites assembled from configuration.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rdkcentral/rpc-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	controllerRequestID = "3"
	methodRequestID     = 42
)

// ExpectedLifecycleResponse is what the Controller returns for a successful activate or deactivate.
const ExpectedLifecycleResponse = `{"jsonrpc":"2.0","id":3,"result":null}`

// Service groups the requests for one plugin.
type Service struct {
	Name       string
	Callsign   string
	Activate   servicedef.Request
	Deactivate servicedef.Request
	Operations map[string]servicedef.Request
}

var services = map[string]Service{}

func register(s Service) Service {
	services[s.Name] = s
	return s
}

// Activate returns the Controller request that activates the plugin with the given callsign.
func Activate(callsign string) servicedef.Request {
	return controllerRequest("activate", callsign)
}

// Deactivate returns the Controller request that deactivates the plugin with the given callsign.
func Deactivate(callsign string) servicedef.Request {
	return controllerRequest("deactivate", callsign)
}

func controllerRequest(action, callsign string) servicedef.Request {
	return servicedef.Request{
		Operation: action,
		ID:        ldvalue.String(controllerRequestID),
		Method:    "Controller.1." + action,
		Params:    ldvalue.ObjectBuild().Set("callsign", ldvalue.String(callsign)).Build(),
	}
}

func method(callsign, name string, params ldvalue.Value) servicedef.Request {
	return servicedef.Request{
		Operation: name,
		ID:        ldvalue.Int(methodRequestID),
		Method:    callsign + "." + name,
		Params:    params,
	}
}

// verbatim keeps r's fields for lookup and comparison but sends body unchanged.
func verbatim(r servicedef.Request, body string) servicedef.Request {
	r.RawBody = body
	return r
}

func object(kvs ...interface{}) ldvalue.Value {
	b := ldvalue.ObjectBuild()
	for i := 0; i+1 < len(kvs); i += 2 {
		b.Set(kvs[i].(string), ldvalue.CopyArbitraryValue(kvs[i+1]))
	}
	return b.Build()
}

func operations(reqs ...servicedef.Request) map[string]servicedef.Request {
	ret := make(map[string]servicedef.Request, len(reqs))
	for _, r := range reqs {
		ret[r.Operation] = r
	}
	return ret
}

// Services returns the names of all registered services in sorted order.
func Services() []string {
	ret := make([]string, 0, len(services))
	for name := range services {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Lookup finds a request by service name and operation name. The operations "activate" and
// "deactivate" resolve to the service's Controller lifecycle requests.
func Lookup(service, operation string) (servicedef.Request, error) {
	s, ok := services[service]
	if !ok {
		return servicedef.Request{}, fmt.Errorf("unknown service %q (known services: %s)",
			service, strings.Join(Services(), ", "))
	}
	switch operation {
	case "activate":
		return s.Activate, nil
	case "deactivate":
		return s.Deactivate, nil
	}
	r, ok := s.Operations[operation]
	if !ok {
		return servicedef.Request{}, fmt.Errorf("service %q has no operation %q", service, operation)
	}
	return r, nil
}
