package catalog

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/rdkcentral/rpc-contract-tests/servicedef"
)

const DeviceDiagnosticsCallsign = "org.rdk.DeviceDiagnostics"

const redPwmParameter = "Device.X_CISCO_COM_LED.RedPwm"

var (
	DeviceDiagnosticsGetConfiguration = method(DeviceDiagnosticsCallsign, "getConfiguration",
		object("names", []interface{}{redPwmParameter}))

	DeviceDiagnosticsGetConfigurationMoreParams = named("getConfiguration_moreparams",
		method(DeviceDiagnosticsCallsign, "getConfiguration",
			object("names", []interface{}{redPwmParameter}, "faulty", "ON")))

	DeviceDiagnosticsGetConfigurationWrongParams = named("getConfiguration_wrongparams",
		method(DeviceDiagnosticsCallsign, "getConfiguration",
			object("faultCode", "ABCD", "faulty", "ON")))

	DeviceDiagnosticsGetMilestones = method(DeviceDiagnosticsCallsign, "getMilestones", ldvalue.Null())

	// The logMilestone bodies are malformed on purpose (the method string swallows the params
	// key), so they are kept as literal text.
	DeviceDiagnosticsLogMilestone = literal("logMilestone",
		`{"jsonrpc": "2.0", "id": 42,"method":"org.rdk.DeviceDiagnostics.logMilestone,"params": {"marker": "..."}"}`)

	DeviceDiagnosticsLogMilestoneWrongParams = literal("logMilestone_wrongparams",
		`{"jsonrpc": "2.0", "id": 42,"method":"org.rdk.DeviceDiagnostics.logMilestone,"params": {"marker": "...", "faulty" : "ON"}"}`)

	DeviceDiagnosticsLogMilestoneMoreParams = literal("logMilestone_moreparams",
		`{"jsonrpc": "2.0", "id": 42,"method":"org.rdk.DeviceDiagnostics.logMilestone,"params": {"faultyCode": "..."}"}`)

	DeviceDiagnosticsGetAVDecoderStatus = method(DeviceDiagnosticsCallsign, "getAVDecoderStatus", ldvalue.Null())
)

var DeviceDiagnostics = register(Service{
	Name:       "DeviceDiagnostics",
	Callsign:   DeviceDiagnosticsCallsign,
	Activate:   Activate(DeviceDiagnosticsCallsign),
	Deactivate: Deactivate(DeviceDiagnosticsCallsign),
	Operations: operations(
		DeviceDiagnosticsGetConfiguration,
		DeviceDiagnosticsGetConfigurationMoreParams,
		DeviceDiagnosticsGetConfigurationWrongParams,
		DeviceDiagnosticsGetMilestones,
		DeviceDiagnosticsLogMilestone,
		DeviceDiagnosticsLogMilestoneWrongParams,
		DeviceDiagnosticsLogMilestoneMoreParams,
		DeviceDiagnosticsGetAVDecoderStatus,
	),
})

func named(operation string, r servicedef.Request) servicedef.Request {
	r.Operation = operation
	return r
}

func literal(operation, body string) servicedef.Request {
	return servicedef.Request{
		Operation: operation,
		ID:        ldvalue.Int(methodRequestID),
		Method:    DeviceDiagnosticsCallsign + ".logMilestone",
		RawBody:   body,
	}
}
